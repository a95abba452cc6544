// Package record defines the request inputs sent to the evidencija API: the
// update payload describing one device assignment entry and the date range
// used to query entries. Both types validate themselves before a request is
// built.
package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Date layouts used by the API.
const (
	// PayloadDateLayout is the day.month.year form stored on records, e.g. "21.3.2025".
	PayloadDateLayout = "2.1.2006"
	// QueryDateLayout is the ISO form accepted by dateFrom/dateTo.
	QueryDateLayout = "2006-01-02"
)

// Payload is the JSON body of an update request. Every key is always encoded,
// including empty ones.
type Payload struct {
	ID           string `json:"_id" yaml:"_id" validate:"required"`
	Date         string `json:"date" yaml:"date" validate:"omitempty,dmy"`
	DeviceName   string `json:"deviceName" yaml:"deviceName"`
	Note         string `json:"napomena" yaml:"napomena"`
	Registration string `json:"reg_oznaka" yaml:"reg_oznaka"`
	Assignee     string `json:"zadužio" yaml:"zadužio"`
}

// DateRange selects records by day, both ends inclusive.
type DateRange struct {
	From string `validate:"required,datetime=2006-01-02"`
	To   string `validate:"required,datetime=2006-01-02"`
}

// Day returns a range covering the single day d.
func Day(d time.Time) DateRange {
	s := d.Format(QueryDateLayout)
	return DateRange{From: s, To: s}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
	reDMY        = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{4}$`)
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("dmy", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if !reDMY.MatchString(s) {
				return false
			}
			_, err := time.Parse(PayloadDateLayout, s)
			return err == nil
		})
	})
	return validate
}

// Validate checks the payload: _id is required and date, when set, must be a
// real calendar day written as D.M.YYYY.
func (p Payload) Validate() error {
	return describe(validatorInstance().Struct(p))
}

// Validate checks both ends are ISO dates and To does not precede From.
func (r DateRange) Validate() error {
	if err := describe(validatorInstance().Struct(r)); err != nil {
		return err
	}
	if r.To < r.From {
		return fmt.Errorf("dateTo %s precedes dateFrom %s", r.To, r.From)
	}
	return nil
}

// describe turns validator errors into a single readable message.
func describe(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	name := jsonName(fe.StructField())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "dmy":
		return fmt.Sprintf("%s %q must be a date in D.M.YYYY form", name, fe.Value())
	case "datetime":
		return fmt.Sprintf("%s %q must be a date in YYYY-MM-DD form", name, fe.Value())
	}
	return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
}

// jsonName maps struct fields to the names users see in flags and payloads.
func jsonName(field string) string {
	switch field {
	case "ID":
		return "_id"
	case "Date":
		return "date"
	case "From":
		return "dateFrom"
	case "To":
		return "dateTo"
	}
	return field
}

// LoadPayload reads a payload from a JSON or YAML file, chosen by extension
// (.yml/.yaml are YAML, everything else JSON).
func LoadPayload(path string) (Payload, error) {
	var p Payload
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &p)
	default:
		err = json.Unmarshal(data, &p)
	}
	if err != nil {
		return p, fmt.Errorf("parse payload %s: %w", path, err)
	}
	return p, nil
}

// Merge returns p with every non-empty field of o applied on top.
func (p Payload) Merge(o Payload) Payload {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&p.ID, o.ID)
	set(&p.Date, o.Date)
	set(&p.DeviceName, o.DeviceName)
	set(&p.Note, o.Note)
	set(&p.Registration, o.Registration)
	set(&p.Assignee, o.Assignee)
	return p
}
