// Package uithread marshals work onto the toolkit's single UI goroutine.
package uithread

import "fyne.io/fyne/v2"

// Scheduler runs task on the UI goroutine. It must not block waiting for the
// task to finish.
type Scheduler func(task func())

// Fyne schedules tasks through the running Fyne driver.
func Fyne() Scheduler {
	return fyne.Do
}

// Immediate runs the task in the calling goroutine. Only useful where the
// caller already is the UI goroutine, tests mostly.
func Immediate(task func()) {
	task()
}

// Queue is a Scheduler that collects tasks until Drain is called. Tests use it
// as a stand-in for the UI event loop.
type Queue chan func()

// NewQueue creates a queue holding up to size pending tasks.
func NewQueue(size int) Queue {
	return make(Queue, size)
}

func (q Queue) Schedule(task func()) {
	q <- task
}

// Drain runs every task currently queued and reports how many ran.
func (q Queue) Drain() int {
	n := 0
	for {
		select {
		case task := <-q:
			task()
			n++
		default:
			return n
		}
	}
}
