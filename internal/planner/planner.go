package planner

import (
	"os"

	"github.com/backmassage/tifconvert/internal/formats"
	"github.com/backmassage/tifconvert/internal/naming"
)

// BuildPlan produces the FilePlan for job across specs. With skipExisting,
// any destination that already exists is marked ActionSkip; otherwise every
// format is (re-)encoded. Formats with no directory in job.OutputDirs are
// left out of the plan.
func BuildPlan(job ConversionJob, specs []formats.Spec, skipExisting bool) *FilePlan {
	plan := &FilePlan{
		SourcePath: job.SourcePath,
		Stem:       naming.Stem(job.SourcePath),
		Targets:    make([]Target, 0, len(specs)),
	}
	for _, s := range specs {
		dir, ok := job.OutputDirs[s.Key]
		if !ok {
			continue
		}
		t := Target{
			Format:     s,
			OutputPath: naming.OutputPath(job.SourcePath, dir, s.Extension),
			Action:     ActionEncode,
		}
		if skipExisting && exists(t.OutputPath) {
			t.Action = ActionSkip
		}
		plan.Targets = append(plan.Targets, t)
	}
	return plan
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
