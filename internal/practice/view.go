package practice

import "github.com/vytor/vocabflash/internal/models"

// View is a read-only snapshot of a session for rendering and JSON.
// CorrectOption is only set once the current quiz word has been answered.
type View struct {
	Mode           Mode                  `json:"mode"`
	State          State                 `json:"state"`
	Index          int                   `json:"index"`
	Total          int                   `json:"total"`
	Word           models.VocabularyWord `json:"word"`
	Revealed       bool                  `json:"revealed"`
	Score          Score                 `json:"score"`
	ScorePercent   int                   `json:"score_percent"`
	Options        []string              `json:"options,omitempty"`
	SelectedOption *int                  `json:"selected_option,omitempty"`
	CorrectOption  *int                  `json:"correct_option,omitempty"`
	Progress       float64               `json:"progress"`
	IsFirst        bool                  `json:"is_first"`
	IsLast         bool                  `json:"is_last"`
	StudiedCount   int                   `json:"studied_count"`
}

func (s *Session) View() View {
	v := View{
		Mode:         s.mode,
		State:        s.State(),
		Index:        s.index,
		Total:        len(s.words),
		Word:         s.CurrentWord(),
		Revealed:     s.reveal,
		Score:        s.score,
		ScorePercent: s.score.Percent(),
		Options:      s.QuizOptions(),
		Progress:     s.ProgressPercent(),
		IsFirst:      s.index == 0,
		IsLast:       s.IsLast(),
		StudiedCount: len(s.studied),
	}
	if picked, ok := s.SelectedOption(); ok {
		v.SelectedOption = &picked
	}
	if s.mode == ModeQuiz && s.reveal {
		for i, opt := range s.options {
			if opt == s.words[s.index].Definition {
				correct := i
				v.CorrectOption = &correct
				break
			}
		}
	}
	return v
}

// IsSelected and IsCorrect let templates style an option without pointer logic.
func (v View) IsSelected(i int) bool {
	return v.SelectedOption != nil && *v.SelectedOption == i
}

func (v View) IsCorrect(i int) bool {
	return v.CorrectOption != nil && *v.CorrectOption == i
}

// Position is the 1-based counter shown as "n / total".
func (v View) Position() int {
	return v.Index + 1
}
