package controller

import (
	m "github.com/mouse-blink/mapconv/internal/model"
)

// Message types.
type planMsg struct {
	sources []m.Source
	threads int
}

type startedMsg struct {
	source m.Source
}

type completedMsg struct {
	report m.Report
}

type summaryMsg struct {
	reports []m.Report
}
