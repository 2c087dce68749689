package mockemail

import (
	"github.com/mww/roast_reporter/model"
	"github.com/stretchr/testify/mock"
)

type Sender struct {
	mock.Mock
}

func (s *Sender) SendWeeklyReport(report *model.WeeklyReport, recipient string) error {
	args := s.Called(report, recipient)
	return args.Error(0)
}

func (s *Sender) SendWaiverAlert(recs []model.WaiverWireRecommendation, leagueName string, week int, recipient string) error {
	args := s.Called(recs, leagueName, week, recipient)
	return args.Error(0)
}
