package table_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-gin-user-table/internal/feature/table"
	"go-gin-user-table/internal/repo"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "Empty term keeps all", term: "", want: usernames(repo.SampleUsers())},
		{name: "Username", term: "jane", want: []string{"jane_smith"}},
		{name: "Case insensitive", term: "JANE", want: []string{"jane_smith"}},
		{name: "Email", term: "lisa@", want: []string{"lisa_anderson"}},
		{name: "Admin flag text", term: "true", want: []string{"john_doe", "robert_johnson", "michael_brown", "david_miller", "james_wilson"}},
		{name: "Admin flag text upper", term: "FALSE", want: []string{"jane_smith", "sarah_williams", "emily_davis", "lisa_anderson", "emma_taylor"}},
		{name: "Shared fragment keeps input order", term: "em", want: []string{"emily_davis", "emma_taylor"}},
		{name: "No match", term: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Filter(repo.SampleUsers(), tt.term)
			assert.Equal(t, tt.want, usernames(got))
		})
	}
}

func TestFilter_Partition(t *testing.T) {
	users := repo.SampleUsers()
	for _, term := range []string{"a", "J", "example.com", "rue", "_w", "9"} {
		got := table.Filter(users, term)
		kept := map[int64]bool{}
		for _, u := range got {
			kept[u.ID] = true
		}
		l := strings.ToLower(term)
		for _, u := range users {
			match := strings.Contains(strings.ToLower(u.Username), l) ||
				strings.Contains(strings.ToLower(u.Email), l) ||
				strings.Contains(strconv.FormatBool(u.IsAdmin), l)
			assert.Equal(t, match, kept[u.ID], "term %q user %s", term, u.Username)
		}
	}
}

func TestFilter_DoesNotTouchInput(t *testing.T) {
	users := repo.SampleUsers()
	_ = table.Filter(users, "jane")
	assert.Equal(t, repo.SampleUsers(), users)
}
