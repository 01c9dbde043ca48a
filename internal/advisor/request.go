package advisor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Request is one question for the advisor. An empty Opener asks about an
// unopened pot; otherwise hero (Position) faces a raise from Opener.
type Request struct {
	Hand     string
	Position string
	Opener   string
	Stack    float64
	Context  string
}

func (r Request) String() string {
	stack := strconv.FormatFloat(r.Stack, 'f', -1, 64)
	if r.Opener != "" {
		return fmt.Sprintf("%s %s vs %s %s", r.Hand, r.Position, r.Opener, stack)
	}
	if r.Context == "" {
		return fmt.Sprintf("%s %s %s", r.Hand, r.Position, stack)
	}
	return fmt.Sprintf("%s %s %s %s", r.Hand, r.Position, stack, r.Context)
}

// ErrEmptyRequest is returned by ParseRequest for blank lines and comments.
var ErrEmptyRequest = errors.New("empty request")

// ParseRequest parses one request line in either form:
//
//	<hand> <position> <stack> [auto|open|shove]
//	<hand> <hero> vs <opener> <stack>
//
// Blank lines and lines starting with '#' return ErrEmptyRequest. A
// trailing "bb" on the stack is accepted.
func ParseRequest(line string) (Request, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Request{}, ErrEmptyRequest
	}

	fields := strings.Fields(line)
	if len(fields) == 5 && strings.EqualFold(fields[2], "vs") {
		stack, err := parseStack(fields[4])
		if err != nil {
			return Request{}, err
		}
		return Request{Hand: fields[0], Position: fields[1], Opener: fields[3], Stack: stack}, nil
	}

	if len(fields) != 3 && len(fields) != 4 {
		return Request{}, fmt.Errorf("malformed request %q: want \"<hand> <position> <stack> [context]\" or \"<hand> <hero> vs <opener> <stack>\"", line)
	}
	stack, err := parseStack(fields[2])
	if err != nil {
		return Request{}, err
	}
	req := Request{Hand: fields[0], Position: fields[1], Stack: stack}
	if len(fields) == 4 {
		req.Context = fields[3]
	}
	return req, nil
}

func parseStack(s string) (float64, error) {
	trimmed := strings.TrimSuffix(strings.ToLower(s), "bb")
	stack, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, &ValidationError{Field: "stack", Value: s, Reason: "not a number", Err: err}
	}
	return stack, nil
}

// Evaluate dispatches req to RecommendVsOpen or RecommendOpenOrShove.
func (a *Advisor) Evaluate(req Request) (Decision, error) {
	if req.Opener != "" {
		return a.RecommendVsOpen(req.Hand, req.Position, req.Opener, req.Stack)
	}
	return a.RecommendOpenOrShove(req.Hand, req.Position, req.Stack, req.Context)
}
