// Package mock
// Author: momentics <momentics@gmail.com>
//
// Recording substitutes for the api contracts: Spawner, Ticker, Timer.
//
// A mock never performs real work. It records exactly what was asked of
// it (the spawned task, the number of ticks awaited, the duration a
// timer was armed with) and exposes that record through accessors and
// through Done checks. Each mock is a per-test value: construct it,
// hand it to the code under test, interrogate it afterwards.
//
// Two styles of expectation checking are supported. Done returns a
// *CountError for assertable failures. The Expect constructors
// (ExpectSpawns, ExpectTicks) register the same check with tb.Cleanup
// so a forgotten assertion still fails the test at scope exit.
package mock
