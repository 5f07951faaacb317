package progress

import "fmt"

// RecordAnswer locks in the learner's first answer to a level's quiz. A
// correct answer completes the level. If the level was already answered the
// stored outcome is returned unchanged, whatever option is passed now.
func (e *Engine) RecordAnswer(levelID, option string) (AnswerOutcome, error) {
	level, moduleID, ok := e.cat.Level(levelID)
	if !ok {
		return AnswerOutcome{}, fmt.Errorf("answer %q: %w", levelID, ErrUnknownLevel)
	}
	quiz, ok := level.Quiz()
	if !ok {
		return AnswerOutcome{}, fmt.Errorf("answer %q: %w", levelID, ErrNotQuiz)
	}

	if prev, answered := e.state.answer(levelID); answered {
		return prev, nil
	}

	// Checked before locking so a refused answer does not use up the level's
	// single answer.
	if e.strict && !e.IsUnlocked(moduleID, levelID) {
		return AnswerOutcome{}, fmt.Errorf("answer %q: %w", levelID, ErrLocked)
	}

	chosen, ok := quiz.OptionByText(option)
	if !ok {
		return AnswerOutcome{}, fmt.Errorf("answer %q with %q: %w", levelID, option, ErrUnknownOption)
	}

	outcome := AnswerOutcome{LevelID: levelID, Option: chosen.Text, Correct: chosen.Correct}
	e.state.lockAnswer(outcome)
	e.emit(Event{
		Kind:     EventAnswerRecorded,
		ModuleID: moduleID,
		LevelID:  levelID,
		Option:   chosen.Text,
		Correct:  chosen.Correct,
	})

	if outcome.Correct {
		if err := e.CompleteLevel(levelID); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}
