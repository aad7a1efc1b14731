package picker

import (
	"context"
	"log/slog"
)

// LogObserver logs every dispatched action at debug level. Rejected actions
// are logged at info so a skipped category or an empty draw is visible.
func LogObserver(log *slog.Logger) Observer {
	if log == nil {
		return nil
	}
	return func(o Outcome) {
		level := slog.LevelDebug
		if !o.Applied {
			level = slog.LevelInfo
		}
		attrs := []any{
			"action", o.Action.Name(),
			"applied", o.Applied,
			"phase", o.After.Phase().String(),
			"pool", len(o.After.Pool),
		}
		switch a := o.Action.(type) {
		case AddCategory:
			attrs = append(attrs, "category", a.Category.Key)
		case Randomize:
			if o.Applied {
				attrs = append(attrs, "selection", o.After.Selection)
			}
		}
		log.Log(context.Background(), level, "picker dispatch", attrs...)
	}
}
