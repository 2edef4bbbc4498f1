// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/entity/arena"
	"cloudeng.io/entity/component"
	"cloudeng.io/entity/queue"
)

type dijkstraFlags struct {
	cmdutil.LoggingFlags
	Vertices int   `subcmd:"vertices,1000,number of vertices in the generated graph"`
	Degree   int   `subcmd:"degree,8,number of outgoing edges per vertex"`
	Seed     int64 `subcmd:"seed,1,seed for the graph generator"`
	Source   int   `subcmd:"source,0,source vertex for the shortest path computation"`
}

type vertex struct{}

type edge struct {
	to     arena.ID[vertex]
	weight int
}

func randomGraph(alloc *arena.T[vertex], rnd *rand.Rand, vertices, degree int) ([]arena.ID[vertex], [][]edge) {
	ids := make([]arena.ID[vertex], vertices)
	for i := range ids {
		ids[i] = alloc.NewID()
	}
	edges := make([][]edge, vertices)
	for i := range edges {
		edges[i] = make([]edge, degree)
		for j := range edges[i] {
			edges[i][j] = edge{
				to:     ids[rnd.Intn(vertices)],
				weight: 1 + rnd.Intn(100),
			}
		}
	}
	return ids, edges
}

// shortestPaths runs dijkstra's algorithm from src using a min queue as
// the frontier and a component map for the best known distances.
func shortestPaths(ids []arena.ID[vertex], edges [][]edge, src arena.ID[vertex]) *component.Map[int] {
	dist := component.New[int](len(ids))
	frontier := queue.NewMin[vertex, int](queue.WithSliceCap(len(ids)))
	dist.Insert(src.Raw(), 0)
	frontier.Insert(src, 0)
	for !frontier.Empty() {
		id, d, _ := frontier.Pop()
		for _, e := range edges[id.Index()] {
			nd := d + e.weight
			cur, ok := dist.Lookup(e.to.Raw())
			switch {
			case !ok:
				dist.Insert(e.to.Raw(), nd)
				frontier.Insert(e.to, nd)
			case nd < cur:
				dist.Insert(e.to.Raw(), nd)
				frontier.Decrease(e.to, nd)
			}
		}
	}
	return dist
}

func dijkstra(ctx context.Context, values interface{}, args []string) error {
	flagValues := values.(*dijkstraFlags)
	logger, err := flagValues.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	if flagValues.Vertices <= 0 || flagValues.Degree <= 0 {
		return fmt.Errorf("vertices (%v) and degree (%v) must be positive", flagValues.Vertices, flagValues.Degree)
	}
	if flagValues.Source < 0 || flagValues.Source >= flagValues.Vertices {
		return fmt.Errorf("source vertex %v is out of range", flagValues.Source)
	}

	rnd := rand.New(rand.NewSource(flagValues.Seed)) // #nosec: G404
	alloc := arena.New[vertex]()
	ids, edges := randomGraph(alloc, rnd, flagValues.Vertices, flagValues.Degree)
	start := time.Now()
	dist := shortestPaths(ids, edges, ids[flagValues.Source])
	took := time.Since(start)

	reached, maxDist, sum := 0, 0, 0
	for _, d := range dist.All() {
		reached++
		sum += d
		maxDist = max(maxDist, d)
	}
	logger.Info("dijkstra done", "vertices", flagValues.Vertices, "degree", flagValues.Degree, "seed", flagValues.Seed, "reached", reached, "took", took)
	fmt.Printf("reached %v of %v vertices from vertex %v in %v\n", reached, flagValues.Vertices, flagValues.Source, took)
	if reached > 0 {
		fmt.Printf("max distance %v, mean distance %.1f\n", maxDist, float64(sum)/float64(reached))
	}
	return nil
}
