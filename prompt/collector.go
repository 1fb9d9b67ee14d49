package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/l2enel/Revisited-Udacity/domain/entities/filter"
	"github.com/l2enel/Revisited-Udacity/utils"
	log "github.com/sirupsen/logrus"
)

const (
	collectorType = "filter-collector"
	restartAnswer = "yes"
)

const (
	greeting          = "Hello! Let's explore some US bikeshare data!"
	validCitiesMsg    = "Valid cities are; Chicago, New York City, and Washington.\n"
	cityPrompt        = "Please enter name of desired city for inquiry."
	cityRetryPrompt   = "Please retry and enter a valid city."
	monthPrompt       = `Please enter desired month for inquiry, or type "all" for all months.`
	monthRetryPrompt  = "Please retry and enter a valid month."
	dayPrompt         = `Please enter desired day for inquiry, or type "all" for all days.`
	dayRetryPrompt    = "Please retry and enter a valid day."
	restartPrompt     = "\nWould you like to restart? Enter yes or no."
	selectionTemplate = "Exploring %s, month: %s, day: %s"
)

// FilterCollector asks the user for the city, month and day to analyze.
// Invalid answers are never an error, the question is asked again until the answer is valid
type FilterCollector struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewFilterCollector(reader io.Reader, writer io.Writer) *FilterCollector {
	return &FilterCollector{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

func (fc *FilterCollector) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", collectorType, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", collectorType, method, message)
}

// Collect returns the filters chosen by the user. The only possible error comes from the input,
// io.EOF when the user closes it
func (fc *FilterCollector) Collect() (filter.Selection, error) {
	fc.println(greeting)

	fc.println(validCitiesMsg)
	city, err := fc.ask(cityPrompt, cityRetryPrompt, validCitiesMsg, filter.NormalizeCity)
	if err != nil {
		return filter.Selection{}, err
	}

	month, err := fc.ask(monthPrompt, monthRetryPrompt, "", filter.NormalizeMonth)
	if err != nil {
		return filter.Selection{}, err
	}

	day, err := fc.ask(dayPrompt, dayRetryPrompt, "", filter.NormalizeDay)
	if err != nil {
		return filter.Selection{}, err
	}

	selection := filter.Selection{City: city, Month: month, Day: day}
	fc.println(fmt.Sprintf(selectionTemplate, city, month, day))
	fc.println(utils.Separator())

	log.Debug(fc.getLogMessage("Collect", fmt.Sprintf("filters collected: %s", selection), nil))
	return selection, nil
}

// AskRestart returns true if the user wants to explore data again
func (fc *FilterCollector) AskRestart() (bool, error) {
	fc.println(restartPrompt)
	answer, err := fc.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, restartAnswer), nil
}

// ask repeats the question until normalize accepts the answer
func (fc *FilterCollector) ask(question string, retry string, hint string, normalize func(string) (string, bool)) (string, error) {
	fc.println(question)
	for {
		answer, err := fc.readLine()
		if err != nil {
			log.Debug(fc.getLogMessage("ask", "error reading answer", err))
			return "", err
		}

		if value, ok := normalize(answer); ok {
			return value, nil
		}

		log.Debugf("[component: %s][method: ask] invalid answer %q", collectorType, answer)
		if hint != "" {
			fc.println(hint)
		}
		fc.println(retry)
	}
}

// readLine returns the next line of the input without its line terminator.
// Other whitespace is kept, " chicago" is not a valid city
func (fc *FilterCollector) readLine() (string, error) {
	line, err := fc.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (fc *FilterCollector) println(message string) {
	if _, err := fmt.Fprintln(fc.writer, message); err != nil {
		log.Error(fc.getLogMessage("println", "error writing prompt", err))
	}
}
