package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ergochat/readline"
	hugegraph "github.com/zyoo/hugegraph"
	"github.com/zyoo/hugegraph/keys"
	"github.com/zyoo/hugegraph/table"
)

// REPL is a small shell over one open store, for poking tables and
// index queries by hand.
type REPL struct {
	store   *hugegraph.Store
	session *hugegraph.Session
	tables  map[keys.EntityType]table.BackendTable
	rl      *readline.Instance
}

var ErrNoStore = errors.New("no store open, use: open <dir>")

var completer = readline.NewPrefixCompleter(
	readline.PcItem("help"),

	readline.PcItem("open"),
	readline.PcItem("close"),

	readline.PcItem("next"),
	readline.PcItem("get"),
	readline.PcItem("put"),
	readline.PcItem("scan"),

	readline.PcItem("eq"),
	readline.PcItem("range"),

	readline.PcItem("exit"),
	readline.PcItem("quit"),
)

func filterInput(r rune) (rune, bool) {
	// block CtrlZ feature
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}

func (r *REPL) Open() (err error) {
	r.rl, err = readline.NewEx(&readline.Config{
		Prompt:          "hg> ",
		HistoryFile:     ".hugegraph_cmd_log.txt",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return
	}
	r.rl.CaptureExitSignal()
	return
}

func (r *REPL) Close() error {
	if r.session != nil {
		_ = r.session.Close()
		r.session = nil
	}
	if r.store != nil {
		_ = r.store.Close()
		r.store = nil
	}
	if r.rl != nil {
		_ = r.rl.Close()
		r.rl = nil
	}
	return nil
}

// REPL reads and runs one command.
func (r *REPL) REPL() error {
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt && len(line) != 0 {
		return nil
	}
	if err != nil {
		return err
	}

	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "help":
		r.commandHelp()
	case "open":
		err = r.commandOpen(args)
	case "close":
		err = r.commandClose()
	case "next":
		err = r.commandNext(args)
	case "get":
		err = r.commandGet(args)
	case "put":
		err = r.commandPut(args)
	case "scan":
		err = r.commandScan(args)
	case "eq":
		err = r.commandEq(args)
	case "range":
		err = r.commandRange(args)
	case "exit", "quit":
		if r.store != nil {
			_ = r.commandClose()
		}
		return io.EOF
	default:
		_, _ = fmt.Fprintf(os.Stderr, "command unknown: %s\n", cmd)
	}
	return err
}

func (r *REPL) commandHelp() {
	fmt.Println("open <dir>                open or create a store")
	fmt.Println("close                     close the store")
	fmt.Println("next <table>              allocate the next id for a type")
	fmt.Println("put <table> <key> <val>   write and commit one row")
	fmt.Println("get <table> <key>         point lookup")
	fmt.Println("scan <table>              dump a table partition")
	fmt.Println("eq <label> <value>        secondary index lookup")
	fmt.Println("range <label> <min> <max> range index scan, min <= v < max")
}

// tableNames maps the short partition names to entity types.
var tableNames = map[string]keys.EntityType{}

func init() {
	for _, t := range []keys.EntityType{
		keys.VertexLabel, keys.EdgeLabel, keys.PropertyKey, keys.IndexLabel,
		keys.Vertex, keys.Edge,
		keys.SecondaryIndex, keys.RangeIndex, keys.Counter,
	} {
		tableNames[t.TableName()] = t
	}
}

func parseTable(name string) (keys.EntityType, error) {
	t, ok := tableNames[name]
	if !ok {
		return keys.Unknown, fmt.Errorf("unknown table %q, one of: v e vl el pk il si ri c", name)
	}
	return t, nil
}
