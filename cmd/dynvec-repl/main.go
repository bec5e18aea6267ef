// Command dynvec-repl is an interactive shell around a dynvec.Vector
// of int64. It exists to exercise and demonstrate the container:
// every mutator is reachable as a command, mutations can be traced as
// structured log events, and the vector can be saved to and loaded
// from CBOR or YAML files.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/dynvec/dynvec-go/pkg/dynvec"
	"github.com/dynvec/dynvec-go/pkg/oplog"
)

// session holds the REPL state: the vector under manipulation, the
// readline instance and the operation logger for trace mode.
type session struct {
	vec    *dynvec.Vector[int64]
	rl     *readline.Instance
	logger oplog.Logger
}

func main() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "dynvec> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatalf("Failed to create readline: %v", err)
	}
	defer rl.Close()

	s := &session{
		vec:    dynvec.New[int64](),
		rl:     rl,
		logger: oplog.NoopLogger{},
	}
	s.printHelp()
	s.run()
}

func (s *session) run() {
	for {
		line, err := s.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "show", "print":
			fmt.Fprintf(s.rl.Stdout(), "%v (len=%d cap=%d)\n", s.vec, s.vec.Len(), s.vec.Cap())

		case "len":
			fmt.Fprintln(s.rl.Stdout(), s.vec.Len())

		case "cap":
			fmt.Fprintln(s.rl.Stdout(), s.vec.Cap())

		case "push":
			s.cmdPush(args)

		case "pop":
			s.vec.Pop()
			s.record("pop", -1, "")

		case "insert":
			s.cmdInsert(args)

		case "del", "erase":
			s.cmdDelete(args)

		case "at":
			s.cmdAt(args)

		case "set":
			s.cmdSet(args)

		case "resize":
			s.cmdResize(args)

		case "reserve":
			s.cmdReserve(args)

		case "clear":
			s.vec.Clear()
			s.record("clear", -1, "")

		case "clone":
			c := s.vec.Clone()
			fmt.Fprintf(s.rl.Stdout(), "clone: %v (len=%d cap=%d)\n", c, c.Len(), c.Cap())

		case "save":
			s.cmdSave(args, "cbor")

		case "load":
			s.cmdLoad(args, "cbor")

		case "savey":
			s.cmdSave(args, "yaml")

		case "loady":
			s.cmdLoad(args, "yaml")

		case "trace":
			s.cmdTrace(args)

		case "exit", "quit":
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (try 'help')\n", cmd)
		}
	}
}

func (s *session) printHelp() {
	fmt.Fprint(s.rl.Stdout(), `Commands:
  show                 print elements, size and capacity
  len | cap            print size / capacity
  push N [N ...]       append values
  pop                  remove the last element (no-op when empty)
  insert I N           insert N at index I
  del I                delete the element at index I
  at I                 bounds-checked read at index I
  set I N              overwrite the element at index I
  resize N             change the logical size
  reserve N            grow capacity to exactly N
  clear                drop all elements, keep storage
  clone                print a deep copy (capacity == size)
  save FILE            write the vector as CBOR
  load FILE            replace the vector from a CBOR file
  savey FILE           write the vector as YAML
  loady FILE           replace the vector from a YAML file
  trace on|off         log every mutation as a structured event
  exit                 quit
`)
}

// record emits an operation event when tracing is enabled.
func (s *session) record(op string, index int, value string) {
	s.logger.Log(oplog.Event{
		Op:    op,
		Index: index,
		Value: value,
		Len:   s.vec.Len(),
		Cap:   s.vec.Cap(),
	})
}

func (s *session) cmdPush(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: push N [N ...]")
		return
	}
	for _, a := range args {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			fmt.Fprintf(s.rl.Stdout(), "Not a number: %s\n", a)
			return
		}
		s.vec.Append(n)
		s.record("append", s.vec.Len()-1, a)
	}
}

func (s *session) cmdInsert(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: insert I N")
		return
	}
	i, err1 := strconv.Atoi(args[0])
	n, err2 := strconv.ParseInt(args[1], 10, 64)
	if err1 != nil || err2 != nil {
		fmt.Fprintln(s.rl.Stdout(), "Usage: insert I N")
		return
	}
	if i < 0 || i > s.vec.Len() {
		fmt.Fprintf(s.rl.Stdout(), "Index %d out of range [0, %d]\n", i, s.vec.Len())
		return
	}
	idx := s.vec.Insert(i, n)
	s.record("insert", idx, args[1])
}

func (s *session) cmdDelete(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: del I")
		return
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(s.rl.Stdout(), "Usage: del I")
		return
	}
	if i < 0 || i >= s.vec.Len() {
		fmt.Fprintf(s.rl.Stdout(), "Index %d out of range [0, %d)\n", i, s.vec.Len())
		return
	}
	s.vec.Delete(i)
	s.record("delete", i, "")
}

func (s *session) cmdAt(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: at I")
		return
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(s.rl.Stdout(), "Usage: at I")
		return
	}
	val, err := s.vec.At(i)
	if err != nil {
		var re *dynvec.RangeError
		if errors.As(err, &re) {
			fmt.Fprintf(s.rl.Stdout(), "Out of range: index %d, size %d\n", re.Index, re.Len)
		} else {
			fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		}
		return
	}
	fmt.Fprintln(s.rl.Stdout(), val)
}

func (s *session) cmdSet(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: set I N")
		return
	}
	i, err1 := strconv.Atoi(args[0])
	n, err2 := strconv.ParseInt(args[1], 10, 64)
	if err1 != nil || err2 != nil {
		fmt.Fprintln(s.rl.Stdout(), "Usage: set I N")
		return
	}
	if i < 0 || i >= s.vec.Len() {
		fmt.Fprintf(s.rl.Stdout(), "Index %d out of range [0, %d)\n", i, s.vec.Len())
		return
	}
	s.vec.Set(i, n)
	s.record("set", i, args[1])
}

func (s *session) cmdResize(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: resize N")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: resize N (non-negative)")
		return
	}
	s.vec.Resize(n)
	s.record("resize", -1, args[0])
}

func (s *session) cmdReserve(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: reserve N")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: reserve N (non-negative)")
		return
	}
	s.vec.Reserve(n)
	s.record("reserve", -1, args[0])
}

func (s *session) cmdSave(args []string, format string) {
	if len(args) != 1 {
		fmt.Fprintf(s.rl.Stdout(), "Usage: save%s FILE\n", formatSuffix(format))
		return
	}

	var data []byte
	var err error
	switch format {
	case "cbor":
		data, err = cbor.Marshal(s.vec)
	case "yaml":
		data, err = yaml.Marshal(s.vec)
	}
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Encode failed: %v\n", err)
		return
	}

	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Write failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.rl.Stdout(), "Saved %d elements to %s\n", s.vec.Len(), args[0])
}

func (s *session) cmdLoad(args []string, format string) {
	if len(args) != 1 {
		fmt.Fprintf(s.rl.Stdout(), "Usage: load%s FILE\n", formatSuffix(format))
		return
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Read failed: %v\n", err)
		return
	}

	switch format {
	case "cbor":
		err = cbor.Unmarshal(data, s.vec)
	case "yaml":
		err = yaml.Unmarshal(data, s.vec)
	}
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Decode failed: %v\n", err)
		return
	}
	s.record("load", -1, args[0])
	fmt.Fprintf(s.rl.Stdout(), "Loaded %d elements from %s\n", s.vec.Len(), args[0])
}

func formatSuffix(format string) string {
	if format == "yaml" {
		return "y"
	}
	return ""
}

func (s *session) cmdTrace(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.rl.Stdout(), "Usage: trace on|off")
		return
	}
	switch strings.ToLower(args[0]) {
	case "on":
		handler := slog.NewTextHandler(s.rl.Stdout(), &slog.HandlerOptions{Level: slog.LevelDebug})
		s.logger = oplog.NewSlogAdapter(slog.New(handler))
		fmt.Fprintln(s.rl.Stdout(), "Trace enabled")
	case "off":
		s.logger = oplog.NoopLogger{}
		fmt.Fprintln(s.rl.Stdout(), "Trace disabled")
	default:
		fmt.Fprintln(s.rl.Stdout(), "Usage: trace on|off")
	}
}
