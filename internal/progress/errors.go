package progress

import "errors"

var (
	// ErrUnknownLevel is returned when a mutation names a level that is not
	// in the catalog.
	ErrUnknownLevel = errors.New("unknown level")

	// ErrNotQuiz is returned by RecordAnswer for levels without a quiz
	// payload. A repeated answer is not an error; it replays the stored
	// outcome.
	ErrNotQuiz = errors.New("level has no quiz")

	// ErrUnknownOption is returned when the chosen text matches no option of
	// the level's quiz. Nothing is recorded.
	ErrUnknownOption = errors.New("no such quiz option")

	// ErrLocked is returned by CompleteLevel in strict gating mode when the
	// level's predecessor is not completed.
	ErrLocked = errors.New("level is locked")
)
