package strategy

import "gitlab.com/open-soft/go-scanner-bot/src/model"

// SignalStrategy is the swappable signal source of the scan loop; the
// scheduling, sizing and submission core stays the same whichever one
// is configured.
type SignalStrategy interface {
	GetName() string
	Decide(product model.Product) model.Decision
}
