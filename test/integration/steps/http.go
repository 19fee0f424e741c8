package steps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

var objectiveIDPlaceholder = regexp.MustCompile(`\{id:([^}]+)\}`)

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.executeRequest(method, path, []byte(body.Content))
}

func (t *testContext) iSendRequestsToWithBody(count int, method, path string, body *godog.DocString) error {
	for i := 0; i < count; i++ {
		if err := t.executeRequest(method, path, []byte(body.Content)); err != nil {
			return err
		}
	}
	return nil
}

// replacePlaceholders swaps {id:Objective name} for the ID of the objective
// created under that name.
func (t *testContext) replacePlaceholders(content string) (string, error) {
	var missing string
	replaced := objectiveIDPlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		name := objectiveIDPlaceholder.FindStringSubmatch(match)[1]
		id, ok := t.objectiveIDs[name]
		if !ok {
			missing = name
			return match
		}
		return id.String()
	})
	if missing != "" {
		return "", fmt.Errorf("no objective named '%s' was created in this scenario", missing)
	}
	return replaced, nil
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	if err := t.ensureServer(); err != nil {
		return err
	}

	path, err := t.replacePlaceholders(path)
	if err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		content, err := t.replacePlaceholders(string(payload))
		if err != nil {
			return err
		}
		body = bytes.NewBufferString(content)
	}

	req, err := http.NewRequest(method, t.server.URL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
		raw:     raw,
	}
	if len(raw) > 0 {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err == nil {
			t.response.body = decoded
		}
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return fmt.Errorf("no request has been sent")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d: %s", expectedStatus, t.response.status, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil || t.response.body == nil {
		return fmt.Errorf("response is not valid JSON")
	}
	return nil
}

func (t *testContext) theResponseShouldContain(text string) error {
	if t.response == nil || !strings.Contains(string(t.response.raw), text) {
		return fmt.Errorf("response does not contain '%s'", text)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if err := t.theResponseShouldBeJSON(); err != nil {
		return err
	}
	expectedValue, err := t.replacePlaceholders(expectedValue)
	if err != nil {
		return err
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		if expectedValue == "null" {
			return nil
		}
		return fmt.Errorf("field '%s' not found in response: %s", field, string(t.response.raw))
	}

	if actual := formatValue(value); actual != expectedValue {
		return fmt.Errorf("expected field '%s' to be '%s', got '%s'", field, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if err := t.theResponseShouldBeJSON(); err != nil {
		return err
	}
	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	if err := t.theResponseShouldBeJSON(); err != nil {
		return err
	}
	if getFieldValue(t.response.body, field) != nil {
		return fmt.Errorf("field '%s' should not be in response: %s", field, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	if err := t.theResponseShouldBeJSON(); err != nil {
		return err
	}
	items, ok := getFieldValue(t.response.body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %s", field, string(t.response.raw))
	}
	if len(items) != count {
		return fmt.Errorf("expected %d items in '%s', got %d", count, field, len(items))
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldBe(header, expectedValue string) error {
	if t.response == nil {
		return fmt.Errorf("no request has been sent")
	}
	if actual := t.response.headers.Get(header); actual != expectedValue {
		return fmt.Errorf("expected header '%s' to be '%s', got '%s'", header, expectedValue, actual)
	}
	return nil
}

// theResponseObjectivesShouldBeOrderedAs compares the objectiveName of every
// element of the "objectives" list with the first column of the table.
func (t *testContext) theResponseObjectivesShouldBeOrderedAs(table *godog.Table) error {
	if err := t.theResponseShouldBeJSON(); err != nil {
		return err
	}
	items, ok := getFieldValue(t.response.body, "objectives").([]any)
	if !ok {
		return fmt.Errorf("response has no objectives list: %s", string(t.response.raw))
	}
	if len(items) != len(table.Rows) {
		return fmt.Errorf("expected %d objectives, got %d", len(table.Rows), len(items))
	}
	for i, row := range table.Rows {
		want := row.Cells[0].Value
		if got := formatValue(getFieldValue(items[i], "objectiveName")); got != want {
			return fmt.Errorf("objective %d: expected '%s', got '%s'", i, want, got)
		}
	}
	return nil
}

func formatValue(value any) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	default:
		encoded, _ := json.Marshal(v)
		return string(encoded)
	}
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var field any = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
