package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karanvir-s/employee-directory-api/internal/domain"
	"github.com/karanvir-s/employee-directory-api/internal/testutil"
)

// minimal PNG header, enough for magic-byte sniffing
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

type employeeForm struct {
	fields    map[string]string
	courses   []string
	imageName string
	imageData []byte
}

func defaultEmployeeForm() employeeForm {
	return employeeForm{
		fields: map[string]string{
			"name":        "Asha Rao",
			"email":       "asha@example.com",
			"mobile":      "5551234567",
			"designation": "Developer",
			"gender":      "F",
		},
		courses: []string{"BSC", "MCA"},
	}
}

func (f employeeForm) encode(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range f.fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, course := range f.courses {
		require.NoError(t, writer.WriteField("course", course))
	}
	if f.imageName != "" {
		part, err := writer.CreateFormFile("image", f.imageName)
		require.NoError(t, err)
		_, err = part.Write(f.imageData)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func sendForm(t *testing.T, method, url string, form employeeForm, cookie *http.Cookie) *http.Response {
	t.Helper()

	body, contentType := form.encode(t)
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

type employeeEnvelope struct {
	Msg      string          `json:"msg"`
	Employee domain.Employee `json:"employee"`
}

func TestEmployeeHandler_RequiresAuth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := getWithCookie(t, ts.APIURL("/employees/"), nil)
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "No token, authorization denied")
}

func TestEmployeeHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, cookie := testutil.NewAccountBuilder().Login(t, ts)

	t.Run("without image", func(t *testing.T) {
		resp := sendForm(t, http.MethodPost, ts.APIURL("/employees/"), defaultEmployeeForm(), cookie)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusCreated)

		var envelope employeeEnvelope
		testutil.AssertJSONResponse(t, resp, &envelope)
		assert.Equal(t, "Employee created successfully", envelope.Msg)
		assert.Equal(t, "Asha Rao", envelope.Employee.Name)
		assert.Empty(t, envelope.Employee.Image)
		assert.JSONEq(t, `["BSC","MCA"]`, string(envelope.Employee.Courses))
	})

	t.Run("with png image", func(t *testing.T) {
		ts.DB.Truncate(t)

		form := defaultEmployeeForm()
		form.imageName = "photo.png"
		form.imageData = pngBytes

		resp := sendForm(t, http.MethodPost, ts.APIURL("/employees/"), form, cookie)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusCreated)

		var envelope employeeEnvelope
		testutil.AssertJSONResponse(t, resp, &envelope)
		assert.NotEmpty(t, envelope.Employee.Image)
	})

	t.Run("rejects non-image upload", func(t *testing.T) {
		ts.DB.Truncate(t)

		form := defaultEmployeeForm()
		form.imageName = "resume.txt"
		form.imageData = []byte("plain text, not an image")

		resp := sendForm(t, http.MethodPost, ts.APIURL("/employees/"), form, cookie)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Only jpg and png files allowed")
	})

	t.Run("missing field", func(t *testing.T) {
		ts.DB.Truncate(t)

		form := defaultEmployeeForm()
		delete(form.fields, "mobile")

		resp := sendForm(t, http.MethodPost, ts.APIURL("/employees/"), form, cookie)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "All fields are required")
	})

	t.Run("duplicate email", func(t *testing.T) {
		ts.DB.Truncate(t)
		testutil.NewEmployeeBuilder().WithEmail("asha@example.com").Build(t, ts.DB.DB)

		resp := sendForm(t, http.MethodPost, ts.APIURL("/employees/"), defaultEmployeeForm(), cookie)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "Email already exists")
	})
}

func TestEmployeeHandler_ListAndGet(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, cookie := testutil.NewAccountBuilder().Login(t, ts)

	first := testutil.NewEmployeeBuilder().WithName("First").Build(t, ts.DB.DB)
	second := testutil.NewEmployeeBuilder().WithName("Second").
		WithCreatedAt(first.CreatedAt.Add(time.Minute)).Build(t, ts.DB.DB)

	t.Run("list newest first", func(t *testing.T) {
		resp := getWithCookie(t, ts.APIURL("/employees/"), cookie)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var employees []domain.Employee
		testutil.AssertJSONResponse(t, resp, &employees)
		require.Len(t, employees, 2)
		assert.Equal(t, second.ID, employees[0].ID)
		assert.Equal(t, first.ID, employees[1].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		resp := getWithCookie(t, ts.APIURL("/employees/"+first.ID.String()), cookie)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var employee domain.Employee
		testutil.AssertJSONResponse(t, resp, &employee)
		assert.Equal(t, "First", employee.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		resp := getWithCookie(t, ts.APIURL("/employees/"+uuid.New().String()), cookie)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Employee not found")
	})

	t.Run("malformed id", func(t *testing.T) {
		resp := getWithCookie(t, ts.APIURL("/employees/not-a-uuid"), cookie)
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Employee not found")
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, cookie := testutil.NewAccountBuilder().Login(t, ts)

	employee := testutil.NewEmployeeBuilder().
		WithName("Before").
		WithEmail("before@example.com").
		Build(t, ts.DB.DB)

	form := employeeForm{
		fields: map[string]string{"designation": "Manager"},
	}

	resp := sendForm(t, http.MethodPut, ts.APIURL("/employees/"+employee.ID.String()), form, cookie)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var envelope employeeEnvelope
	testutil.AssertJSONResponse(t, resp, &envelope)
	assert.Equal(t, "Employee updated successfully", envelope.Msg)
	assert.Equal(t, "Manager", envelope.Employee.Designation)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Before", envelope.Employee.Name)
	assert.Equal(t, "before@example.com", envelope.Employee.Email)
}

func TestEmployeeHandler_Delete(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, cookie := testutil.NewAccountBuilder().Login(t, ts)

	employee := testutil.NewEmployeeBuilder().Build(t, ts.DB.DB)

	req, err := http.NewRequest(http.MethodDelete, ts.APIURL("/employees/"+employee.ID.String()), nil)
	require.NoError(t, err)
	req.AddCookie(cookie)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var body map[string]string
	testutil.AssertJSONResponse(t, resp, &body)
	assert.Equal(t, "Employee deleted successfully", body["msg"])

	// Gone on re-fetch and on re-delete.
	getResp := getWithCookie(t, ts.APIURL("/employees/"+employee.ID.String()), cookie)
	defer getResp.Body.Close()
	testutil.AssertErrorResponse(t, getResp, http.StatusNotFound, "Employee not found")
}
