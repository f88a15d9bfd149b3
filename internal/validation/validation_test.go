package validation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate_UnmarshalPlainDate(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"2025-11-01"`), &d)
	assert.NoError(t, err)

	want := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, d.Time.Equal(want))

	// the calendar date survives the round trip regardless of local timezone
	y, m, day := d.Time.Date()
	assert.Equal(t, 2025, y)
	assert.Equal(t, time.November, m)
	assert.Equal(t, 1, day)
}

func TestDate_UnmarshalRFC3339(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"2025-11-01T14:30:00-03:00"`), &d)
	assert.NoError(t, err)
	assert.True(t, d.Time.Equal(time.Date(2025, time.November, 1, 17, 30, 0, 0, time.UTC)))
}

func TestDate_UnmarshalInvalid(t *testing.T) {
	tests := []string{
		`"not-a-date"`,
		`"2025-13-45"`,
		`"01/11/2025"`,
		`123`,
		`true`,
	}
	for _, input := range tests {
		var d Date
		err := json.Unmarshal([]byte(input), &d)
		assert.Error(t, err, "input %s should not parse", input)
		assert.True(t, d.IsZero(), "input %s must not leave a default date", input)
	}
}

func TestDate_UnmarshalNull(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`null`), &d)
	assert.NoError(t, err)
	assert.True(t, d.IsZero())
}

type registerForm struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func TestMessages_FieldNamesFromJSONTags(t *testing.T) {
	v := New()

	err := v.Struct(registerForm{Email: "bad", Password: "a", ConfirmPassword: "b"})
	assert.Error(t, err)

	msgs := Messages(err)
	assert.Equal(t, []string{
		"O campo name é obrigatório",
		"Email inválido",
		"As senhas não coincidem",
	}, msgs)

	assert.Equal(t, "O campo name é obrigatório", First(err))
}

func TestMessages_NilError(t *testing.T) {
	assert.Nil(t, Messages(nil))
	assert.Equal(t, "", First(nil))
}

func TestJoinJSON(t *testing.T) {
	got := JoinJSON([]string{"um", "dois"})
	var back []string
	assert.NoError(t, json.Unmarshal([]byte(got), &back))
	assert.Equal(t, []string{"um", "dois"}, back)
}
