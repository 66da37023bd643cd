package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseDirectives parses the directive text format:
//
//	processcount <int>
//	runfor <int>
//	use <fcfs|sjf|rr>
//	quantum <int>
//	process name <NAME> arrival <int> burst <int>
//	end
//
// Blank lines and '#' comments are ignored, as is everything after `end`.
// Directive order is not significant. The result is not validated; see Scenario.Validate.
func ParseDirectives(path string, r io.Reader) (*Scenario, error) {
	sc := &Scenario{}
	seen := make(map[string]int) // scalar directive -> line of first occurrence

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		perr := func(msg string, err error) error {
			return &ParseError{Path: path, Line: lineNo, Msg: msg, Err: err}
		}

		directive := fields[0]
		switch directive {
		case "end":
			return sc, nil
		case "processcount", "runfor", "quantum", "use":
			if first, dup := seen[directive]; dup {
				return nil, perr(fmt.Sprintf("duplicate %s directive (first on line %d)", directive, first), nil)
			}
			seen[directive] = lineNo
			if len(fields) < 2 {
				return nil, perr(fmt.Sprintf("missing value for %s", directive), nil)
			}
			if len(fields) > 2 {
				return nil, perr(fmt.Sprintf("unexpected tokens after %s value: %s", directive, strings.Join(fields[2:], " ")), nil)
			}
			if directive == "use" {
				sc.Use = strings.ToLower(fields[1])
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, perr(fmt.Sprintf("invalid %s value %q", directive, fields[1]), err)
			}
			switch directive {
			case "processcount":
				sc.ProcessCount = &n
			case "runfor":
				sc.RunFor = &n
			case "quantum":
				sc.Quantum = &n
			}
		case "process":
			p, err := parseProcessLine(fields[1:])
			if err != nil {
				return nil, perr(err.Error(), nil)
			}
			sc.Processes = append(sc.Processes, p)
		default:
			return nil, perr(fmt.Sprintf("unknown directive %q", directive), nil)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	return sc, nil
}

// parseProcessLine parses the keyword/value pairs of a process directive.
// Keywords may appear in any order but each exactly once.
func parseProcessLine(tokens []string) (ProcessSpec, error) {
	var p ProcessSpec
	have := map[string]bool{}
	for i := 0; i < len(tokens); i += 2 {
		key := tokens[i]
		switch key {
		case "name", "arrival", "burst":
		default:
			return p, fmt.Errorf("unknown process parameter %q", key)
		}
		if have[key] {
			return p, fmt.Errorf("duplicate process parameter %s", key)
		}
		if i+1 >= len(tokens) || isProcessKeyword(tokens[i+1]) {
			return p, fmt.Errorf("missing value for process parameter %s", key)
		}
		have[key] = true
		val := tokens[i+1]
		if key == "name" {
			p.Name = val
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return p, fmt.Errorf("invalid %s value %q", key, val)
		}
		if key == "arrival" {
			p.Arrival = n
		} else {
			p.Burst = n
		}
	}
	for _, key := range []string{"name", "arrival", "burst"} {
		if !have[key] {
			return p, fmt.Errorf("missing parameter %s", key)
		}
	}
	return p, nil
}

func isProcessKeyword(s string) bool {
	return s == "name" || s == "arrival" || s == "burst"
}

// FormatDirectives writes a scenario in the directive text format.
// Absent scalar fields are omitted; `end` is always written.
func FormatDirectives(w io.Writer, s *Scenario) error {
	bw := bufio.NewWriter(w)
	if s.ProcessCount != nil {
		fmt.Fprintf(bw, "processcount %d\n", *s.ProcessCount)
	}
	if s.RunFor != nil {
		fmt.Fprintf(bw, "runfor %d\n", *s.RunFor)
	}
	if s.Use != "" {
		fmt.Fprintf(bw, "use %s\n", s.Use)
	}
	if s.Quantum != nil {
		fmt.Fprintf(bw, "quantum %d\n", *s.Quantum)
	}
	for _, p := range s.Processes {
		fmt.Fprintf(bw, "process name %s arrival %d burst %d\n", p.Name, p.Arrival, p.Burst)
	}
	fmt.Fprintln(bw, "end")
	return bw.Flush()
}
