//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package typeset

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
)

// A Preview is the outcome of typesetting one version of an expression.
type Preview struct {
	Latex string
	Image []byte
	Err   error
}

// A Previewer typesets markup on a single background worker. Only the latest
// update waits to be typeset: an update replaces any pending one and cancels
// the request in flight, and only the result of the latest update is
// delivered.
type Previewer struct {
	typesetter Typesetter
	deliver    func(Preview) // called with mu held
	mu         sync.Mutex
	idle       *sync.Cond // broadcast when a request finishes or the previewer closes
	pending    *request
	running    bool
	cancel     context.CancelFunc // cancels the running request
	generation uint64
	closed     bool
	wake       chan struct{}
	quit       chan struct{}
	done       chan struct{}
}

type request struct {
	latex      string
	generation uint64
}

// NewPreviewer returns a previewer that passes results to deliver and starts
// its worker. Deliver must not call back into the previewer.
func NewPreviewer(t Typesetter, deliver func(Preview)) *Previewer {
	p := &Previewer{
		typesetter: t,
		deliver:    deliver,
		wake:       make(chan struct{}, 1),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	p.idle = sync.NewCond(&p.mu)
	go p.run()
	return p
}

// Update asks for latex to be typeset, superseding any earlier update.
func (p *Previewer) Update(latex string) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.generation++
	p.pending = &request{latex: latex, generation: p.generation}
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
		// the worker already has a wakeup queued
	}
}

func (p *Previewer) run() {
	defer close(p.done)
	for {
		select {
		case <-p.quit:
			return
		case <-p.wake:
		}

		p.mu.Lock()
		r := p.pending
		p.pending = nil
		if r == nil || p.closed {
			p.mu.Unlock()
			continue
		}
		ctx, cancel := context.WithCancel(context.Background())
		p.cancel = cancel
		p.running = true
		p.mu.Unlock()

		image, err := p.typesetter.Typeset(ctx, r.latex)
		cancel()

		p.mu.Lock()
		p.cancel = nil
		p.running = false
		if r.generation == p.generation && !p.closed {
			p.deliver(Preview{Latex: r.latex, Image: image, Err: err})
		}
		p.idle.Broadcast()
		p.mu.Unlock()
	}
}

// Wait blocks until the worker has nothing left to typeset.
func (p *Previewer) Wait() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for (p.pending != nil || p.running) && !p.closed {
		p.idle.Wait()
	}
}

// Close drops any pending update, cancels the request in flight and stops the
// worker.
func (p *Previewer) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.pending = nil
	if p.cancel != nil {
		p.cancel()
	}
	p.idle.Broadcast()
	p.mu.Unlock()

	close(p.quit)
	<-p.done
}

// WriteFile returns a delivery function that writes each image to path.
func WriteFile(path string) func(Preview) {
	return func(preview Preview) {
		if preview.Err != nil {
			if !errors.Is(preview.Err, ErrEmpty) {
				log.Printf("preview: %v", preview.Err)
			}
			return
		}
		if err := os.WriteFile(path, preview.Image, 0644); err != nil {
			log.Printf("preview: %v", err)
		}
	}
}
