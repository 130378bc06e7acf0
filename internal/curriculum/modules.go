package curriculum

import (
	"context"
	"fmt"
)

// ModuleDescriptor is the static catalog entry for a practice module.
type ModuleDescriptor struct {
	ModuleID    string `json:"module_id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// ModuleStatus is a descriptor joined with the learner's progress.
type ModuleStatus struct {
	ModuleDescriptor
	Attempts  int     `json:"attempts"`
	Correct   int     `json:"correct"`
	Incorrect int     `json:"incorrect"`
	Accuracy  float64 `json:"accuracy"`
	Status    string  `json:"status"`
}

var moduleCatalog = []ModuleDescriptor{
	{
		ModuleID:    "sound-safari",
		Name:        "Sound Safari",
		Emoji:       "🦁",
		Description: "Interactive audio-based learning for phonics and sound recognition",
		Type:        "Audio",
	},
	{
		ModuleID:    "twin-letters-ar",
		Name:        "Twin Letters AR",
		Emoji:       "📱",
		Description: "Augmented reality-based letter pair recognition and matching exercises",
		Type:        "Augmented Reality",
	},
}

// Modules returns the practice module catalog.
func Modules() []ModuleDescriptor {
	out := make([]ModuleDescriptor, len(moduleCatalog))
	copy(out, moduleCatalog)
	return out
}

// ModuleStatus returns a module's catalog entry with the learner's
// progress filled in.
func (s *Service) ModuleStatus(ctx context.Context, moduleID, userID string) (*ModuleStatus, error) {
	var desc *ModuleDescriptor
	for i := range moduleCatalog {
		if moduleCatalog[i].ModuleID == moduleID {
			desc = &moduleCatalog[i]
			break
		}
	}
	if desc == nil {
		return nil, fmt.Errorf("unknown module: %q", moduleID)
	}

	p, err := s.attempts.Progress(ctx, userID, moduleID)
	if err != nil {
		return nil, fmt.Errorf("module progress: %w", err)
	}

	return &ModuleStatus{
		ModuleDescriptor: *desc,
		Attempts:         p.Attempts,
		Correct:          p.Correct,
		Incorrect:        p.Attempts - p.Correct,
		Accuracy:         p.Accuracy,
		Status:           "active",
	}, nil
}
