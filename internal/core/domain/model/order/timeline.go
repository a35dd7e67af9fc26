package order

import "time"

// Milestone is one step of the tracking timeline.
type Milestone struct {
	Name    string
	Title   string
	Reached bool
	At      *time.Time
}

type milestone struct {
	name   string
	title  string
	status Status
	at     func(Timestamps) *time.Time
}

func getMilestones() []milestone {
	return []milestone{
		{"created", "Order created", Pending, func(ts Timestamps) *time.Time { return &ts.CreatedAt }},
		{"confirmed", "Order confirmed", Confirmed, func(ts Timestamps) *time.Time { return ts.ConfirmedAt }},
		{"preparing", "Preparing", Preparing, func(ts Timestamps) *time.Time { return ts.PreparingAt }},
		{"ready", "Ready for pickup", Ready, func(ts Timestamps) *time.Time { return ts.ReadyAt }},
		{"delivering", "On the way", Delivering, func(ts Timestamps) *time.Time { return ts.DeliveringAt }},
		{"delivered", "Delivered", Delivered, func(ts Timestamps) *time.Time { return ts.DeliveredAt }},
	}
}

// getProgress maps every non-cancelled status to its index in the
// milestone list.
func getProgress() map[Status]int {
	//nolint:exhaustive // Cancelled is resolved from timestamps
	return map[Status]int{
		Pending:    0,
		Confirmed:  1,
		Preparing:  2,
		Ready:      3,
		Delivering: 4,
		Delivered:  5,
	}
}

// Timeline lists the lifecycle milestones in order. A milestone is reached
// when the current status is at or past it. A cancelled order reports only
// the steps it actually passed, followed by a "cancelled" milestone.
func (o *Order) Timeline() []Milestone {
	ms := getMilestones()
	out := make([]Milestone, 0, len(ms)+1)

	if o.status == Cancelled {
		for _, m := range ms {
			at := m.at(o.timestamps)
			out = append(out, Milestone{
				Name:    m.name,
				Title:   m.title,
				Reached: at != nil,
				At:      at,
			})
		}
		return append(out, Milestone{
			Name:    "cancelled",
			Title:   "Cancelled",
			Reached: true,
			At:      o.timestamps.CancelledAt,
		})
	}

	current, ok := getProgress()[o.status]
	if !ok {
		current = -1
	}

	progress := getProgress()
	for _, m := range ms {
		reached := progress[m.status] <= current
		var at *time.Time
		if reached {
			at = m.at(o.timestamps)
		}
		out = append(out, Milestone{
			Name:    m.name,
			Title:   m.title,
			Reached: reached,
			At:      at,
		})
	}
	return out
}
