// Command btreeset-cli is a small demonstration driver for the ordered
// B-tree set in internal/tree. It is a developer convenience, not part of
// the library's own contract: the set itself has no CLI, environment
// variables, or persisted state of its own.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/peterh/liner"

	"github.com/arboriq/btreeset/internal/tree"
	"github.com/arboriq/btreeset/pkg/config"
	"github.com/arboriq/btreeset/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, os.Stderr)
	t := tree.NewOrderedTree[int64](cfg.TreeDegree, log)

	if len(os.Args) < 2 {
		printUsage(log)
		os.Exit(1)
	}

	switch command := os.Args[1]; command {
	case "insert":
		handleInsert(t, log)
	case "delete":
		handleDelete(t, log)
	case "contains":
		handleContains(t, log)
	case "size":
		log.Infof("size: %d", t.Size())
	case "print":
		t.PrintTreeStructure()
	case "check":
		handleCheck(t, log)
	case "repl":
		runREPL(t, log)
	default:
		log.Errorf("unknown command: %s", command)
		printUsage(log)
		os.Exit(1)
	}
}

func printUsage(log *logger.Logger) {
	log.Infof("Usage: btreeset-cli <command> [arguments]")
	log.Infof("Commands:")
	log.Infof("  insert <value>   - insert a value")
	log.Infof("  delete <value>   - remove a value")
	log.Infof("  contains <value> - test membership")
	log.Infof("  size             - print the number of values")
	log.Infof("  print            - print the tree structure")
	log.Infof("  check            - verify structural invariants")
	log.Infof("  repl             - interactive line-edited session")
}

func parseArg(log *logger.Logger, arg string) int64 {
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		log.Errorf("invalid value: %v", err)
		os.Exit(1)
	}
	return v
}

func handleInsert(t *tree.Tree[int64], log *logger.Logger) {
	if len(os.Args) < 3 {
		log.Errorf("insert requires a value")
		os.Exit(1)
	}
	v := parseArg(log, os.Args[2])
	if t.Insert(v) {
		log.Infof("inserted %d", v)
	} else {
		log.Infof("%d already present", v)
	}
}

func handleDelete(t *tree.Tree[int64], log *logger.Logger) {
	if len(os.Args) < 3 {
		log.Errorf("delete requires a value")
		os.Exit(1)
	}
	v := parseArg(log, os.Args[2])
	if t.Remove(v) {
		log.Infof("removed %d", v)
	} else {
		log.Infof("%d not present", v)
	}
}

func handleContains(t *tree.Tree[int64], log *logger.Logger) {
	if len(os.Args) < 3 {
		log.Errorf("contains requires a value")
		os.Exit(1)
	}
	v := parseArg(log, os.Args[2])
	if t.Contains(v) {
		log.Infof("%d is present", v)
	} else {
		log.Infof("%d is not present", v)
	}
}

func handleCheck(t *tree.Tree[int64], log *logger.Logger) {
	t.CheckStructure()
	log.Infof("structure OK, size=%d", t.Size())
}

// runREPL drives the set interactively, using liner for history and basic
// line editing. Supported lines: "insert N", "delete N", "contains N",
// "size", "check", "quit".
func runREPL(t *tree.Tree[int64], log *logger.Logger) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("btreeset> ")
		if err != nil {
			break
		}
		line.AppendHistory(input)

		var cmd string
		var arg int64
		n, _ := fmt.Sscanf(input, "%s %d", &cmd, &arg)

		switch cmd {
		case "insert":
			if n < 2 {
				log.Errorf("insert requires a value")
				continue
			}
			if t.Insert(arg) {
				log.Infof("inserted %d", arg)
			} else {
				log.Infof("%d already present", arg)
			}
		case "delete":
			if n < 2 {
				log.Errorf("delete requires a value")
				continue
			}
			if t.Remove(arg) {
				log.Infof("removed %d", arg)
			} else {
				log.Infof("%d not present", arg)
			}
		case "contains":
			if n < 2 {
				log.Errorf("contains requires a value")
				continue
			}
			log.Infof("%d present: %v", arg, t.Contains(arg))
		case "size":
			log.Infof("size: %d", t.Size())
		case "check":
			t.CheckStructure()
			log.Infof("structure OK")
		case "quit", "exit":
			return
		default:
			log.Errorf("unknown command: %q", input)
		}
	}
}
