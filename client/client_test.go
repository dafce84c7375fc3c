package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_LoginDecodesUserAndToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ravi@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"token":   "issued-token",
			"user": map[string]interface{}{
				"id":    1,
				"name":  "Ravi",
				"email": "ravi@example.com",
				"role":  "employee",
			},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, server.Client())
	result, err := c.Login(context.Background(), "ravi@example.com", "supersecret")
	require.NoError(t, err)
	require.Equal(t, "issued-token", result.Token)
	require.Equal(t, "ravi@example.com", result.User.Email)
}

func TestClient_RegisterPostsPayloadAndDecodesResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Ravi", body["name"])
		require.Equal(t, "ravi@example.com", body["email"])
		require.Equal(t, "supersecret", body["password"])
		_, hasPhone := body["phone"]
		require.False(t, hasPhone)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "fresh-token",
			"user": map[string]interface{}{
				"id":    7,
				"name":  "Ravi",
				"email": "ravi@example.com",
				"role":  "employee",
			},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, server.Client())
	result, err := c.Register(context.Background(), RegisterInput{
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, "fresh-token", result.Token)
	require.Equal(t, uint64(7), result.User.ID)
	require.Equal(t, "employee", result.User.Role)
}

func TestClient_LoginFailureSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Invalid credentials",
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, server.Client())
	_, err := c.Login(context.Background(), "ravi@example.com", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "Invalid credentials", apiErr.Message)
}

func TestClient_MyTasksSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 1, "title": "Report", "status": "pending"},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, server.Client())
	tasks, err := c.MyTasks(context.Background(), "my-token")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "pending", tasks[0].Status)
}
