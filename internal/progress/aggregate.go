package progress

// ModuleReport summarizes one module's progress.
type ModuleReport struct {
	ModuleID    string
	Title       string
	BadgeID     string
	Completed   int
	Total       int
	Percent     float64
	BadgeEarned bool
}

// Report summarizes progress across the whole catalog.
type Report struct {
	Modules   []ModuleReport
	Completed int
	Total     int
	Percent   float64
	Badges    []string
}

// OverallProgress returns the percentage (0-100) of catalog levels completed.
func (e *Engine) OverallProgress() float64 {
	total := e.cat.LevelCount()
	if total == 0 {
		return 0
	}
	// Every completed ID is a catalog level, so the set size is the count.
	return percent(e.state.completedCount(), total)
}

// ModuleProgress returns the percentage (0-100) of a module's levels
// completed. Unknown modules report 0.
func (e *Engine) ModuleProgress(moduleID string) float64 {
	done, total := e.moduleCounts(moduleID)
	if total == 0 {
		return 0
	}
	return percent(done, total)
}

// Summary builds a full progress report in catalog order.
func (e *Engine) Summary() Report {
	r := Report{
		Completed: e.state.completedCount(),
		Total:     e.cat.LevelCount(),
		Percent:   e.OverallProgress(),
		Badges:    e.EarnedBadges(),
	}
	for _, m := range e.cat.Modules() {
		done, total := e.moduleCounts(m.ID)
		r.Modules = append(r.Modules, ModuleReport{
			ModuleID:    m.ID,
			Title:       m.Title,
			BadgeID:     m.BadgeID,
			Completed:   done,
			Total:       total,
			Percent:     e.ModuleProgress(m.ID),
			BadgeEarned: e.state.hasBadge(m.BadgeID),
		})
	}
	return r
}

func (e *Engine) moduleCounts(moduleID string) (done, total int) {
	ids := e.cat.LevelIDs(moduleID)
	for _, id := range ids {
		if e.state.isCompleted(id) {
			done++
		}
	}
	return done, len(ids)
}

func percent(part, whole int) float64 {
	return float64(part*100) / float64(whole)
}
