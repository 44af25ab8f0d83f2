// Package report renders search solutions for people and for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cwbudde/countdown/internal/search"
)

// Step is one rendered arithmetic move
type Step struct {
	Op     string `json:"op"`
	Number int    `json:"number"`
	Result int    `json:"result"`
}

// View is the render-ready form of a Solution
type View struct {
	Mode        string  `json:"mode"`
	Numbers     []int   `json:"numbers"`
	Goal        int     `json:"goal"`
	Initial     int     `json:"initial"`
	Steps       []Step  `json:"steps"`
	Final       int     `json:"final"`
	Distance    int     `json:"distance"`
	NumbersUsed int     `json:"numbersUsed"`
	Attack      *int    `json:"attack,omitempty"` // worst replacement, resilient mode only
	Nodes       int64   `json:"nodes"`
	ElapsedMs   float64 `json:"elapsedMs"`
}

// NewView extracts everything a reporter needs from sol
func NewView(sol search.Solution) View {
	c := sol.Candidate
	v := View{
		Mode:        sol.Mode,
		Numbers:     sol.Hand.Numbers(),
		Goal:        sol.Hand.Goal(),
		Initial:     c.Initial(),
		Steps:       make([]Step, 0, len(c.Moves)),
		Final:       c.Value,
		Distance:    sol.Distance(),
		NumbersUsed: sol.Used(),
		Nodes:       sol.Stats.Nodes,
		ElapsedMs:   float64(sol.Elapsed) / float64(time.Millisecond),
	}
	for _, m := range c.Steps() {
		v.Steps = append(v.Steps, Step{Op: m.Op.Symbol(), Number: m.Number(), Result: m.Result})
	}
	if last, ok := c.Last(); ok && sol.Mode == (search.ResilientEvaluator{}).Name() {
		attack, _ := search.ResilientEvaluator{}.WorstAttack(&sol.Hand, last)
		v.Attack = &attack
	}
	return v
}

// Reporter writes a solution to w
type Reporter interface {
	Report(w io.Writer, sol search.Solution) error
}

// New returns the reporter for format ("text" or "json")
func New(format string) (Reporter, error) {
	switch format {
	case "", "text":
		return TextReporter{}, nil
	case "json":
		return JSONReporter{Indent: true}, nil
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}

// TextReporter prints the step listing:
//
//	Initial number: 50
//	Step 1: operation - with number 3 -> result 47
//	...
//	Final number: 462
//	Distance from goal: 0
type TextReporter struct{}

func (TextReporter) Report(w io.Writer, sol search.Solution) error {
	v := NewView(sol)

	if _, err := fmt.Fprintf(w, "Initial number: %d\n", v.Initial); err != nil {
		return err
	}
	for i, s := range v.Steps {
		if _, err := fmt.Fprintf(w, "Step %d: operation %s with number %d -> result %d\n", i+1, s.Op, s.Number, s.Result); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Final number: %d\n", v.Final); err != nil {
		return err
	}

	label := "Distance from goal"
	if v.Attack != nil {
		label = "Distance from goal after attack"
	}
	_, err := fmt.Fprintf(w, "%s: %d\n", label, v.Distance)
	return err
}

// JSONReporter encodes the View of a solution
type JSONReporter struct {
	Indent bool
}

func (r JSONReporter) Report(w io.Writer, sol search.Solution) error {
	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(NewView(sol)); err != nil {
		return fmt.Errorf("failed to encode solution: %w", err)
	}
	return nil
}
