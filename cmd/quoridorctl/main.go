// Command quoridorctl is an interactive console exercising the
// consumer-facing controller interface end to end: move legality,
// search, reroot, and display. It is a local demonstration harness,
// not a network service, the direct analogue of the teacher's
// examples/*/main.go demo programs.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/jrcoleman/quoridor-mcts/pkg/board"
	"github.com/jrcoleman/quoridor-mcts/pkg/controller"
)

const boardSize = 9

func main() {
	profile := termenv.ColorProfile()
	ctrl, err := controller.New(board.New(boardSize), controller.DefaultConfig(
		controller.WithMinSimulations(200),
		controller.WithSimIncrement(16),
	))
	if err != nil {
		fmt.Fprintln(os.Stderr, "quoridorctl: configuration error:", err)
		os.Exit(1)
	}
	defer ctrl.Close()

	printBanner(profile)
	printBoard(ctrl, profile)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "moves":
			for _, m := range ctrl.GetLegalMoves(false) {
				fmt.Println(" ", m)
			}
		case "sims":
			n := 200
			if len(fields) > 1 {
				if v, err := strconv.Atoi(fields[1]); err == nil {
					n = v
				}
			}
			ctrl.EnsureSims(n)
			fmt.Printf("visits: %d\n", ctrl.GetVisitCount())
		case "pv":
			for _, sa := range ctrl.GetSortedActions(false) {
				fmt.Printf("  %-10s visits=%-6d q=%.4f\n", sa.Action, sa.Visits, sa.Q)
			}
		case "eval":
			v, err := ctrl.GetEvaluation()
			if err != nil {
				fmt.Println("  ", err)
				continue
			}
			fmt.Printf("  %.4f (hero-positive)\n", v)
		case "best":
			action, err := ctrl.ChooseBestAction(0)
			if err != nil {
				fmt.Println("  ", err)
				continue
			}
			fmt.Println("  best action:", action)
		case "play":
			if len(fields) < 2 {
				fmt.Println("  usage: play <action>")
				continue
			}
			autoPlay(ctrl, fields[1], profile)
		case "reset":
			ctrl.ResetToInitialState(board.New(boardSize))
			printBoard(ctrl, profile)
		case "status":
			printStatus(ctrl)
		default:
			autoPlay(ctrl, fields[0], profile)
		}
	}
}

func autoPlay(ctrl *controller.Controller, action string, profile termenv.Profile) {
	if err := ctrl.MakeMove(action, false); err != nil {
		fmt.Println("  illegal move:", err)
		return
	}
	printBoard(ctrl, profile)
	printStatus(ctrl)
}

func printStatus(ctrl *controller.Controller) {
	if !ctrl.IsTerminal() {
		return
	}
	winner, _ := ctrl.GetWinner()
	fmt.Printf("*** %s has reached the goal row ***\n", winner)
}

func printBoard(ctrl *controller.Controller, profile termenv.Profile) {
	grid := ctrl.Display(false)
	styled := termenv.String(grid).Foreground(profile.Color("6"))
	fmt.Println(styled)
}

func printBanner(profile termenv.Profile) {
	title := termenv.String("quoridorctl").Bold().Foreground(profile.Color("2"))
	fmt.Println(title)
	fmt.Println("type 'help' for commands")
}

func printHelp() {
	fmt.Println(`commands:
  <action>       play an action, e.g. *(4,1), H(0,0), V(3,4)
  moves          list legal actions at the current position
  sims [n]       run ensure_sims(n) (default 200)
  pv             show sorted actions by visit count
  eval           show the root's hero-positive evaluation
  best           choose and print the best action without playing it
  play <action>  alias for playing an action
  reset          reset to the initial position
  status         print terminal/winner status
  quit           exit`)
}
