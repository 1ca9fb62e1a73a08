package hotel

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNextID          = errors.New("get next id from generator")
	ErrRecordNotFound  = errors.New("record not found")
	ErrAlreadyExists   = errors.New("record already exists")
	ErrNoAvailability  = errors.New("no rooms available")
	ErrRoomUnavailable = errors.New("room is not available for these dates")
	ErrUnknownRoomType = errors.New("unknown room type")
)

type InputError struct {
	fields map[string][]string
}

func newInputError() *InputError {
	return &InputError{
		fields: make(map[string][]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *InputError) Error() string {
	return fmt.Sprintf("%+v", ie.fields)
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}

// Messages flattens the field errors into a stable list.
func (ie *InputError) Messages() []string {
	keys := make([]string, 0, len(ie.fields))
	for k := range ie.fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var msgs []string

	for _, k := range keys {
		msgs = append(msgs, strings.Join(ie.fields[k], "; "))
	}

	return msgs
}
