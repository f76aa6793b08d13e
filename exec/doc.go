// Package exec
// Author: momentics <momentics@gmail.com>
//
// The concrete task executor behind the api.Spawner contract: a pool
// of worker goroutines draining a shared submission queue. This is the
// real collaborator that mock.Spawner replaces in unit tests.
package exec
