package planner

import "github.com/backmassage/tifconvert/internal/formats"

// Action describes the per-format processing decision.
type Action int

const (
	ActionEncode Action = iota
	ActionSkip          // Output already exists.
)

func (a Action) String() string {
	switch a {
	case ActionEncode:
		return "encode"
	case ActionSkip:
		return "skip"
	}
	return "unknown"
}

// ConversionJob is one source file and the directory each format writes to.
type ConversionJob struct {
	SourcePath string
	OutputDirs map[formats.Key]string
}

// Target is the decision for one output format of one source file.
type Target struct {
	Format     formats.Spec
	OutputPath string
	Action     Action
}

// FilePlan holds the decisions for every format of a single source file,
// in registry order.
type FilePlan struct {
	SourcePath string
	Stem       string
	Targets    []Target
}

// Pending returns the number of targets that need encoding.
func (p *FilePlan) Pending() int {
	n := 0
	for _, t := range p.Targets {
		if t.Action == ActionEncode {
			n++
		}
	}
	return n
}
