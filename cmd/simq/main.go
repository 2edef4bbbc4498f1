// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command simq exercises identifier indexed priority queues with
// synthetic workloads. The dijkstra command runs a shortest path
// computation over a generated graph and the events command replays a
// configurable schedule/cancel/reschedule event workload.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	dijkstraFlagSet := subcmd.NewFlagSet()
	dijkstraFlagSet.MustRegisterFlagStruct(&dijkstraFlags{}, nil, nil)
	eventsFlagSet := subcmd.NewFlagSet()
	eventsFlagSet.MustRegisterFlagStruct(&eventsFlags{}, nil, nil)

	dijkstraCmd := subcmd.NewCommand("dijkstra", dijkstraFlagSet, dijkstra, subcmd.WithoutArguments())
	dijkstraCmd.Document("compute shortest paths over a generated graph")

	eventsCmd := subcmd.NewCommand("events", eventsFlagSet, events, subcmd.ExactlyNumArguments(1))
	eventsCmd.Document("replay an event workload described by a yaml config file", "<config-file>")

	cmdSet = subcmd.NewCommandSet(dijkstraCmd, eventsCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
