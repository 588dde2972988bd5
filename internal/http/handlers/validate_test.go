package handlers

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idn-area/internal/domain"
	"idn-area/internal/pagination"
)

func TestValidateName(t *testing.T) {
	cases := []struct {
		name    string
		allowed string
		ok      bool
	}{
		{"bandung", "", true},
		{"Kota  Bandung", "", true},
		{"ab", "", false},
		{strings.Repeat("a", 255), "", true},
		{strings.Repeat("a", 256), "", false},
		{"Tanjung Jabung (Barat)", "'()-./", true},
		{"Tanjung Jabung (Barat)", "'-/", false},
		{"Kep. Seribu", "'()-./", true},
		{"Pulau Ma'rang", "'-/", true},
		{"jawa$", "'()-./", false},
		{"bali+", "", false},
		{"Aceh", "", true},
	}
	for _, tc := range cases {
		err := validateName(tc.name, tc.allowed)
		if tc.ok {
			assert.NoError(t, err, tc.name)
		} else {
			assert.True(t, domain.IsValidation(err), tc.name)
		}
	}
}

func TestValidateListDefaults(t *testing.T) {
	q, err := validateList(url.Values{}, provinceList, 100)
	require.NoError(t, err)
	assert.Equal(t, domain.ListQuery{}, q)
}

func TestValidateListReadsEveryParameter(t *testing.T) {
	v := url.Values{
		"name":        {"  kota   bandung "},
		"regencyCode": {"32.73"},
		"sortBy":      {"coordinate"},
		"sortOrder":   {"DESC"},
		"page":        {"2"},
		"limit":       {"25"},
	}
	q, err := validateList(v, islandList, 100)
	require.NoError(t, err)
	assert.Equal(t, domain.ListQuery{
		Name:       "kota bandung",
		ParentCode: "32.73",
		Sort:       pagination.SortOptions{SortBy: "coordinate", SortOrder: pagination.Desc},
		Page:       pagination.Query{Page: 2, Limit: 25},
	}, q)
}

func TestValidateListRejects(t *testing.T) {
	cases := []struct {
		query string
		rules listRules
		want  string
	}{
		{"sortBy=coordinate", districtList, "sortBy must be one of the following values: code, name"},
		{"sortOrder=sideways", provinceList, "sortOrder must be one of the following values: asc, desc"},
		{"page=-1", provinceList, "page must be a positive integer"},
		{"limit=abc", provinceList, "limit must be a positive integer"},
		{"limit=51", provinceList, "limit must not be greater than 50"},
		{"page=1000000000000000000&limit=50", provinceList, "page must not be greater than 184467440737095517"},
		{"page=1000000000000000000", provinceList, "page must not be greater than 184467440737095517"},
		{"page=100000000000000000000", provinceList, "page must be a positive integer"},
		{"provinceCode=3", regencyList, "provinceCode must be a valid province code in DD format"},
		{"districtCode=32.73.1", villageList, "districtCode must be a valid district code in DD.DD.DD format"},
		{"name=jawa%21", provinceList, "name must not contain any symbols"},
	}
	for _, tc := range cases {
		v, err := url.ParseQuery(tc.query)
		require.NoError(t, err)
		_, err = validateList(v, tc.rules, 50)
		require.Error(t, err, tc.query)
		assert.Equal(t, []string{tc.want}, domain.ValidationMessages(err), tc.query)
	}
}

func TestValidateListLastAddressablePage(t *testing.T) {
	v := url.Values{"page": {"184467440737095517"}, "limit": {"50"}}
	q, err := validateList(v, provinceList, 50)
	require.NoError(t, err)

	_, ok := pagination.Offset(q.Page)
	assert.True(t, ok)

	q, err = validateList(url.Values{"page": {"184467440737095517"}, "limit": {"1"}}, provinceList, 50)
	require.NoError(t, err, "a narrower limit allows deeper pages")
	assert.Equal(t, 184467440737095517, q.Page.Page)
}

func TestNestedRulesIgnoreParentQuery(t *testing.T) {
	v := url.Values{"provinceCode": {"not-a-code"}}
	q, err := validateList(v, regencyList.nested(), 100)
	require.NoError(t, err)
	assert.Empty(t, q.ParentCode)
}

func TestValidateCode(t *testing.T) {
	assert.NoError(t, validateCode("island", "11.01.40001"))
	err := validateCode("island", "11.01.30001")
	require.Error(t, err)
	assert.Equal(t, []string{"code must be a valid island code in DD.DD.4DDDD format"}, domain.ValidationMessages(err))
}
