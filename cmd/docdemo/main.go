// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command docdemo exercises the document value model concurrently,
// the way the teacher's cmd/main.go exercises bart.Lite: one goroutine
// publishes new versions, others read the currently published version
// without ever blocking on the writer.
package main

import (
	"log"
	"sync"
	"time"

	"github.com/tandygong/docval"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	doc := SyncDocumentFrom(docval.ObjectValueFromMap(map[string]docval.Value{
		"name":  docval.String("alpha"),
		"score": docval.Int(0),
	}))

	wg := sync.WaitGroup{}
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		i := int64(0)
		for {
			select {
			case <-stop:
				return
			default:
			}
			i++
			doc.Set(docval.NewFieldPath("score"), docval.Int(i))
			time.Sleep(5 * time.Millisecond)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(stop) // the writer stops once the reader is done
		for n := 0; n < 5; n++ {
			v, ok := doc.Get(docval.NewFieldPath("score"))
			log.Printf("score=%v present=%v", v, ok)
			time.Sleep(20 * time.Millisecond)
		}
	}()

	wg.Wait()

	filter, err := docval.NewFilter(docval.NewFieldPath("score"), docval.GreaterThanOrEqual, docval.Int(1))
	if err != nil {
		log.Fatalf("NewFilter: %v", err)
	}

	final := doc.Load()
	log.Printf("final object: %v, matches score>=1: %v",
		final.AsValue(), filter.Matches(docval.DocumentFromObjectValue(*final)))
}
