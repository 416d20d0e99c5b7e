package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/budgetbook/backend/test/integration/mock"
)

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return errors.New("test server is not running")
	}
	return nil
}

func (t *testContext) iAmAuthenticatedWithTheAccessKey() error {
	return t.obtainToken(mock.TestAccessKey)
}

func (t *testContext) iAmAuthenticatedWithTheAdminKey() error {
	return t.obtainToken(mock.TestAdminKey)
}

func (t *testContext) iAmNotAuthenticated() error {
	t.accessToken = ""
	return nil
}

// obtainToken performs a real token exchange against the running server.
func (t *testContext) obtainToken(key string) error {
	payload, _ := json.Marshal(map[string]string{"accessKey": key})

	resp, err := http.Post(t.server.URL+"/api/v1/auth/token", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to request token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var token struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}

	t.accessToken = token.Token
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders substitutes date placeholders so scenarios stay valid
// regardless of when they run.
func (t *testContext) replacePlaceholders(content string) string {
	now := time.Now().UTC()
	content = strings.ReplaceAll(content, "{{today}}", now.Format("2006-01-02"))
	content = strings.ReplaceAll(content, "{{this_month}}", now.Format("2006-01"))
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.server.URL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.server.Client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
		body:   body,
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.response.status, string(t.response.body))
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.body), expected) {
		return fmt.Errorf("response does not contain %q (body: %s)", expected, string(t.response.body))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actual := fmt.Sprintf("%v", value)
	if actual != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

// responseField resolves a dot-separated path, with numeric segments indexing
// into arrays.
func (t *testContext) responseField(dotSeparatedField string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	var body any
	if err := json.Unmarshal(t.response.body, &body); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	field := body
	for _, segment := range strings.Split(dotSeparatedField, ".") {
		switch current := field.(type) {
		case map[string]any:
			value, ok := current[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found (body: %s)", dotSeparatedField, string(t.response.body))
			}
			field = value
		case []any:
			i, err := strconv.Atoi(segment)
			if err != nil || i >= len(current) {
				return nil, fmt.Errorf("field %q not found (body: %s)", dotSeparatedField, string(t.response.body))
			}
			field = current[i]
		default:
			return nil, fmt.Errorf("field %q not found (body: %s)", dotSeparatedField, string(t.response.body))
		}
	}
	return field, nil
}

func (t *testContext) theSliceShouldBePersisted(slice string) error {
	_, err := t.waitForSlice(slice)
	return err
}

func (t *testContext) thePersistedSliceShouldEqual(slice, expected string) error {
	value, err := t.waitForSlice(slice)
	if err != nil {
		return err
	}
	if value != expected {
		return fmt.Errorf("persisted slice %q expected %q, got %q", slice, expected, value)
	}
	return nil
}

// waitForSlice polls durable storage until the worker has flushed the slice.
func (t *testContext) waitForSlice(slice string) (string, error) {
	deadline := time.Now().Add(2 * time.Second)
	for {
		value, found, err := t.backend.Get(context.Background(), slice)
		if err != nil {
			return "", err
		}
		if found {
			return value, nil
		}
		if time.Now().After(deadline) {
			return "", fmt.Errorf("slice %q was not persisted within 2s", slice)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func (t *testContext) aBackupEmailShouldBeSentTo(recipient string) error {
	if len(t.emailSender.SentEmails) == 0 {
		return errors.New("no email was sent")
	}

	sent := t.emailSender.SentEmails[len(t.emailSender.SentEmails)-1]
	if sent.To != recipient {
		return fmt.Errorf("expected recipient %q, got %q", recipient, sent.To)
	}
	if len(sent.Attachments) != 1 {
		return fmt.Errorf("expected 1 attachment, got %d", len(sent.Attachments))
	}
	if !strings.HasSuffix(sent.Attachments[0].Filename, ".json") {
		return fmt.Errorf("unexpected attachment filename %q", sent.Attachments[0].Filename)
	}
	return nil
}
