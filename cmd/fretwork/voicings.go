package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/fretwork/engine"
	"github.com/katalvlaran/fretwork/formula"
	"github.com/katalvlaran/fretwork/pitch"
	"github.com/katalvlaran/fretwork/voicing"
)

// difficulties maps the --max-difficulty flag values onto buckets.
var difficulties = map[string]voicing.Difficulty{
	"easy":     voicing.Easy,
	"medium":   voicing.Medium,
	"hard":     voicing.Hard,
	"veryhard": voicing.VeryHard,
	"mortal":   voicing.Mortal,
}

func newVoicingsCmd(a *app) *cobra.Command {
	var (
		maxFret       int
		maxDifficulty string
		limit         int
		noOpen        bool
		noMuted       bool
		noBarre       bool
		inversion     int
		catalogPath   string
	)

	cmd := &cobra.Command{
		Use:   "voicings <root> <formula>",
		Short: "Generate ranked voicings for a chord",
		Example: `  fretwork voicings C maj --max-fret 5
  fretwork voicings B m7b5 --max-fret 5 --no-open
  fretwork voicings F maj --tuning drop-d --max-difficulty medium`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := pitch.ParseClass(args[0])
			if err != nil {
				return err
			}
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			qualities, err := cat.Qualities(args[1])
			if err != nil {
				return err
			}

			maxFret = a.v.GetInt("max-fret")
			if maxFret < 1 || maxFret > voicing.MaxPlayableFret {
				return fmt.Errorf("max-fret %d outside [1, %d]", maxFret, voicing.MaxPlayableFret)
			}
			maxDifficulty = strings.ToLower(a.v.GetString("max-difficulty"))
			ceiling, ok := difficulties[maxDifficulty]
			if !ok {
				return fmt.Errorf("unknown difficulty %q (want easy, medium, hard, veryhard or mortal)", maxDifficulty)
			}

			opts := []voicing.Option{
				voicing.WithMaxFret(maxFret),
				voicing.WithMaxDifficulty(ceiling),
			}
			if noOpen {
				opts = append(opts, voicing.WithoutOpen())
			}
			if noMuted {
				opts = append(opts, voicing.WithoutMuted())
			}
			if noBarre {
				opts = append(opts, voicing.WithoutBarre())
			}
			if inversion >= 0 {
				opts = append(opts, voicing.WithInversion(inversion))
			}
			spec, err := voicing.NewSpec(root, qualities, opts...)
			if err != nil {
				return err
			}

			tuning, err := a.selectTuning()
			if err != nil {
				return err
			}
			eng, err := engine.New(
				engine.WithTuning(tuning),
				engine.WithLogger(a.log),
			)
			if err != nil {
				return err
			}

			col, err := eng.Generate(cmd.Context(), spec)
			if err != nil {
				return err
			}
			a.log.Debug("run finished",
				zap.String("chord", args[0]+args[1]),
				zap.Int("voicings", col.Len()),
			)

			return render(cmd.OutOrStdout(), col, limit, args[0], args[1])
		},
	}

	cmd.Flags().IntVar(&maxFret, "max-fret", voicing.DefaultMaxFret, "highest fret to consider")
	cmd.Flags().StringVar(&maxDifficulty, "max-difficulty", "hard", "difficulty ceiling (easy, medium, hard, veryhard, mortal)")
	cmd.Flags().IntVar(&limit, "limit", 20, "print at most this many voicings (0 = all)")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "disallow open strings")
	cmd.Flags().BoolVar(&noMuted, "no-muted", false, "disallow muted strings")
	cmd.Flags().BoolVar(&noBarre, "no-barre", false, "disallow barre voicings")
	cmd.Flags().IntVar(&inversion, "inversion", -1, "require this inversion index (0 = root position)")
	cmd.Flags().StringVar(&catalogPath, "formulas", "", "YAML file with extra chord formulas")

	return cmd
}

// loadCatalog overlays an optional user catalog on the built-ins.
func loadCatalog(path string) (*formula.Catalog, error) {
	if path == "" {
		return formula.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open formula catalog: %w", err)
	}
	defer f.Close()

	return formula.Load(f)
}

// render prints the ranked collection as an aligned table.
func render(out io.Writer, col *voicing.Collection, limit int, root, name string) error {
	n := col.Len()
	if limit > 0 && limit < n {
		n = limit
	}
	if _, err := fmt.Fprintf(out, "%d voicings for %s%s (showing %d)\n", col.Len(), root, name, n); err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFINGERS\tDIFFICULTY\tBARRE\tINV\tDROP2\tBRIGHT\tCONTRAST")
	for i := 0; i < n; i++ {
		v := col.At(i)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%t\t%d\t%d\n",
			v.ID, fingerCode(v), v.Difficulty, barreCode(v),
			v.Inversion, v.Drop2, v.Brightness, v.Contrast,
		)
	}

	return w.Flush()
}

// fingerCode renders one character per string: x muted, 0 open, else the
// assigned finger number.
func fingerCode(v *voicing.Voicing) string {
	var b strings.Builder
	for _, p := range v.Positions {
		switch p.State {
		case voicing.Muted:
			b.WriteByte('x')
		case voicing.Open:
			b.WriteByte('0')
		default:
			b.WriteByte('0' + byte(p.Finger))
		}
	}

	return b.String()
}

// barreCode renders the barre as "fret@low-high" or "-".
func barreCode(v *voicing.Voicing) string {
	if !v.Fingering.HasBarre {
		return "-"
	}
	b := v.Fingering.Barre

	return fmt.Sprintf("%d@%d-%d", b.Fret, b.Low, b.High)
}
