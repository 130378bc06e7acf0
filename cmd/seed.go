package cmd

import (
	"context"
	"fmt"

	"github.com/Dipin-Adhikari/akshara/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the module content tables",
	Long:  "Seed inserts the built-in Sound Safari and Twin Letters AR curriculum into the content store.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd)
	},
}

type safariTask struct {
	level   int
	epoch   int
	target  string
	phonic  string
	choices []string
}

// The Sound Safari ladder: level 1 maps single phonemes to graphemes,
// level 2 blends consonant clusters, level 3 discriminates whole words
// against near-neighbours.
var safariCurriculum = []safariTask{
	{1, 0, "b", "ba", []string{"b", "d", "v"}},
	{1, 1, "f", "fa", []string{"f", "v", "p"}},
	{1, 2, "s", "sa", []string{"s", "c", "z"}},
	{1, 3, "m", "ma", []string{"m", "n", "w"}},
	{1, 4, "t", "ta", []string{"t", "d", "k"}},
	{1, 5, "p", "pa", []string{"p", "b", "k"}},

	{2, 0, "bra", "bra", []string{"bra", "bara", "dra"}},
	{2, 1, "pla", "pla", []string{"pla", "pa", "bla"}},
	{2, 2, "sta", "sta", []string{"sta", "sata", "ska"}},
	{2, 3, "tra", "tra", []string{"tra", "tara", "dra"}},
	{2, 4, "kla", "kla", []string{"kla", "ka", "gla"}},
	{2, 5, "spla", "spla", []string{"spla", "spa", "bla"}},

	{3, 0, "bat", "bat", []string{"bat", "pat", "bad"}},
	{3, 1, "fan", "fan", []string{"fan", "van", "pan"}},
	{3, 2, "sip", "sip", []string{"sip", "zip", "ship"}},
	{3, 3, "cap", "cap", []string{"cap", "cab", "gap"}},
	{3, 4, "ten", "ten", []string{"ten", "den", "pen"}},
	{3, 5, "map", "map", []string{"map", "nap", "mat"}},
}

type arTask struct {
	level  int
	epoch  int
	word   string
	prompt string
	model  string
}

var arCurriculum = []arTask{
	{1, 0, "Apple", "Can you find the Apple hidden in your room?",
		"https://raw.githubusercontent.com/KhronosGroup/glTF-Sample-Models/master/2.0/Apple/glTF/Apple.gltf"},
	{1, 1, "Duck", "Look around! Where is the Duck?",
		"https://raw.githubusercontent.com/KhronosGroup/glTF-Sample-Models/master/2.0/Duck/glTF/Duck.gltf"},
	{1, 2, "Chair", "Scan the floor to place the Chair!",
		"https://raw.githubusercontent.com/KhronosGroup/glTF-Sample-Models/master/2.0/SheenChair/glTF/SheenChair.gltf"},
	{2, 0, "Robot", "Find the Robot walking on the floor!",
		"https://raw.githubusercontent.com/KhronosGroup/glTF-Sample-Models/master/2.0/SciFiHelmet/glTF/SciFiHelmet.gltf"},
	{2, 1, "Lantern", "It's dark! Find the Lantern.",
		"https://raw.githubusercontent.com/KhronosGroup/glTF-Sample-Models/master/2.0/Lantern/glTF/Lantern.gltf"},
}

func runSeed(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	content := st.ContentRepo()
	seeded, err := seedContent(ctx, content)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d tasks into %s\n", seeded, dbPath)
	return nil
}

func seedContent(ctx context.Context, content store.ContentRepo) (int, error) {
	seeded := 0

	for _, t := range safariCurriculum {
		choices := make([]map[string]string, len(t.choices))
		for i, letter := range t.choices {
			choices[i] = map[string]string{"id": fmt.Sprintf("%d", i), "letter": letter}
		}
		payload := map[string]any{
			"target_letter": t.target,
			"phonic_sound":  t.phonic,
			"choices":       choices,
		}
		if err := content.Seed(ctx, "sound-safari", t.level, t.epoch, "sound_safari", payload); err != nil {
			return seeded, fmt.Errorf("seed sound-safari %s: %w", t.target, err)
		}
		seeded++
	}

	for _, t := range arCurriculum {
		payload := map[string]any{
			"task_type":    "ar_hunt",
			"target_word":  t.word,
			"prompt_text":  t.prompt,
			"model_3d_url": t.model,
		}
		if err := content.Seed(ctx, "twin-letters-ar", t.level, t.epoch, "ar_hunt", payload); err != nil {
			return seeded, fmt.Errorf("seed twin-letters-ar %s: %w", t.word, err)
		}
		seeded++
	}

	return seeded, nil
}
