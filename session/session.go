package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/l2enel/Revisited-Udacity/dataset"
	"github.com/l2enel/Revisited-Udacity/domain/business/reportresponse"
	"github.com/l2enel/Revisited-Udacity/domain/entities"
	"github.com/l2enel/Revisited-Udacity/domain/entities/filter"
	"github.com/l2enel/Revisited-Udacity/reports/factory"
	log "github.com/sirupsen/logrus"
)

const sessionType = "session"

// Collector asks the user for the filters and whether to explore again
type Collector interface {
	Collect() (filter.Selection, error)
	AskRestart() (bool, error)
}

type TableLoader interface {
	Load(selection filter.Selection) (dataset.Table, error)
}

// Publisher sends a report response outside the explorer
type Publisher interface {
	Publish(ctx context.Context, response *reportresponse.ReportResponse) error
}

// Session runs the explorer loop: collect filters, load the city, print the reports and ask for a restart.
// The loop ends when the user answers anything but yes or closes the input
type Session struct {
	collector Collector
	loader    TableLoader
	reports   []factory.IReport
	writer    io.Writer
	publisher Publisher
}

// NewSession creates a session. publisher can be nil, in that case reports are only printed
func NewSession(collector Collector, loader TableLoader, reports []factory.IReport, writer io.Writer, publisher Publisher) *Session {
	return &Session{
		collector: collector,
		loader:    loader,
		reports:   reports,
		writer:    writer,
		publisher: publisher,
	}
}

func (s *Session) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", sessionType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", sessionType, method, message)
}

// Run executes iterations until the user leaves. Closing the input is a clean exit,
// errors loading the dataset or generating a report are returned
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		selection, err := s.collector.Collect()
		if errors.Is(err, io.EOF) {
			log.Info(s.getLogMessage("Run", "input closed, bye!", nil))
			return nil
		}
		if err != nil {
			return fmt.Errorf("error collecting filters: %w", err)
		}

		err = s.runIteration(ctx, uuid.NewString(), selection)
		if err != nil {
			return err
		}

		restart, err := s.collector.AskRestart()
		if errors.Is(err, io.EOF) {
			log.Info(s.getLogMessage("Run", "input closed, bye!", nil))
			return nil
		}
		if err != nil {
			return fmt.Errorf("error asking for restart: %w", err)
		}

		if !restart {
			log.Debug(s.getLogMessage("Run", "user does not want to restart", nil))
			return nil
		}
	}
}

func (s *Session) runIteration(ctx context.Context, sessionID string, selection filter.Selection) error {
	log.Infof("[component: %s][method: runIteration][session: %s] exploring %s", sessionType, sessionID, selection)

	table, err := s.loader.Load(selection)
	if err != nil {
		log.Error(s.getLogMessage("runIteration", fmt.Sprintf("error loading %s", selection.City), err))
		return fmt.Errorf("error loading trips of %s: %w", selection.City, err)
	}

	message := fmt.Sprintf("%v trips", table.Len())
	for _, report := range s.reports {
		response, err := report.Generate(s.writer, table)
		if err != nil {
			log.Error(s.getLogMessage("runIteration", fmt.Sprintf("error generating %s", report.GetType()), err))
			return fmt.Errorf("error generating %s: %w", report.GetType(), err)
		}

		response.SetMetadata(entities.NewMetadata(sessionID, report.GetType(), selection, message))
		s.publish(ctx, response)
	}
	return nil
}

// publish failures are logged, the user keeps exploring
func (s *Session) publish(ctx context.Context, response *reportresponse.ReportResponse) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.Publish(ctx, response)
	if err != nil {
		log.Error(s.getLogMessage("publish", fmt.Sprintf("error publishing report %s", response.GetReportID()), err))
	}
}
