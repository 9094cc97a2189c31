package cmd

import (
	"github.com/etnz/leagues/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete handles shell completion of the poecmp command line.
//
// It does nothing unless the program is invoked by the shell for completion,
// in which case it prints the candidates and exits.
func Complete(name string) {
	completion().Complete(name)
}

func completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	topics = append(topics, "*")

	output := predict.Files("*")
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":        predict.Files("*.yaml"),
			"root":          predict.Dirs("*"),
			"ext":           predict.Set{".csv", ".txt"},
			"workers":       predict.Something,
			"fail-on-empty": predict.Nothing,
			"v":             predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"catalog": {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"currencies": {Flags: map[string]complete.Predictor{"surplus": predict.Nothing}},
			"show": {Flags: map[string]complete.Predictor{
				"c":       predict.Something,
				"summary": predict.Nothing,
				"raw":     predict.Nothing,
				"html":    predict.Nothing,
			}},
			"chart": {Flags: map[string]complete.Predictor{
				"o":     predict.Files("*.html"),
				"json":  predict.Nothing,
				"title": predict.Something,
			}},
			"export": {Flags: map[string]complete.Predictor{
				"format": predict.Set{"csv", "xlsx"},
				"o":      output,
			}},
			"serve": {Flags: map[string]complete.Predictor{"addr": predict.Something}},
			"topic": {
				Flags: map[string]complete.Predictor{"raw": predict.Nothing},
				Args:  predict.Set(topics),
			},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
