//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/markkurossi/mpint"
	"github.com/markkurossi/mpint/env"
	"golang.org/x/sync/errgroup"
)

// errFound stops the other prime searchers once a prime is found.
var errFound = errors.New("prime found")

// genPrime searches a bits-bit probable prime with workers parallel
// searchers. With a seed, each worker draws its candidates from its
// own deterministic stream.
func genPrime(bits, workers int, seed string) error {
	if bits < 2 {
		return fmt.Errorf("invalid prime size %d", bits)
	}
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(context.Background())
	found := make(chan *mpint.Int, workers)

	for worker := 0; worker < workers; worker++ {
		var rand io.Reader
		if len(seed) > 0 {
			rand = env.NewSeeded([]byte(seed), uint32(worker))
		} else {
			rand = env.Random(nil)
		}
		worker := worker
		g.Go(func() error {
			return search(ctx, worker, bits, rand, found)
		})
	}

	// Every worker sends at most one prime so the sends never block.
	err := g.Wait()
	close(found)
	if !errors.Is(err, errFound) {
		return err
	}
	PrintResult(os.Stdout, <-found, radix)
	return nil
}

// search tests random odd candidates with the top bit set until it
// finds a probable prime or ctx is done.
func search(ctx context.Context, worker, bits int, rand io.Reader,
	found chan<- *mpint.Int) error {

	top := bits - 1
	for tries := 1; ; tries++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		c, err := mpint.Random(bits, rand)
		if err != nil {
			return err
		}
		c = c.SetBit(top).SetBit(0)
		ok, err := c.ProbablyPrime(rounds, rand)
		if err != nil {
			return err
		}
		if ok {
			if verbose {
				log.Printf("worker %d: found prime after %d candidates\n",
					worker, tries)
			}
			found <- c
			return errFound
		}
	}
}
