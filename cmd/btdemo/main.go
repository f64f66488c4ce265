/*
   Copyright 2021 Joseph Cumines

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/ashgrove/behaviortree"
)

func buildTree(cfg config) behaviortree.Node {
	alertKey := behaviortree.KeyCode(cfg.AlertKey)

	patrol := behaviortree.Named("patrol", behaviortree.While(
		behaviortree.Invert(behaviortree.KeyPressed(alertKey)),
		behaviortree.Leaf(patrolWaypointAction{name: "north gate", legSeconds: cfg.PatrolLegSeconds}),
		behaviortree.Leaf(patrolWaypointAction{name: "east wall", legSeconds: cfg.PatrolLegSeconds}),
		behaviortree.Leaf(patrolWaypointAction{name: "courtyard", legSeconds: cfg.PatrolLegSeconds}),
	))

	chase := behaviortree.Named("chase", behaviortree.Sequence(
		behaviortree.Wait(cfg.ChaseReactionSeconds),
		behaviortree.Leaf(catchAction{durationSeconds: cfg.ChaseDurationSeconds}),
	))

	return behaviortree.Select(patrol, chase)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (optional)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	root := buildTree(cfg)
	log.Printf("behavior tree:\n%s", behaviortree.Print(root))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RunSeconds*float64(time.Second)))
	defer cancel()

	tickRate := time.Duration(cfg.TickRateSeconds * float64(time.Second))
	runner := behaviortree.NewRunner(ctx, tickRate, root, step)

	alertKey := behaviortree.KeyCode(cfg.AlertKey)
	time.AfterFunc(time.Duration(cfg.AlertAfterSeconds*float64(time.Second)), func() {
		log.Print("alert raised, guard should break off patrol and give chase")
		runner.Push(behaviortree.KeyPressEvent{Key: alertKey})
	})

	<-runner.Done()

	if err := runner.Err(); err != nil {
		log.Fatalf("runner stopped with an error: %v", err)
	}
	log.Printf("final status: %s", runner.Status())
}
