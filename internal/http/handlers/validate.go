package handlers

import (
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"idn-area/internal/areacode"
	"idn-area/internal/domain"
	"idn-area/internal/pagination"
	"idn-area/internal/repositories"
	"idn-area/internal/utils"
)

const (
	nameMinLen = 3
	nameMaxLen = 255
)

// listRules are the query rules of one list endpoint.
type listRules struct {
	// punctuation allowed in name besides letters, digits and whitespace
	namePunct string
	sortBy    []string
	// parentParam is the optional query filter on the parent code; empty
	// for endpoints without one.
	parentParam string
	parentKind  areacode.Kind
}

var (
	provinceList = listRules{
		sortBy: []string{repositories.FieldCode, repositories.FieldName},
	}
	regencyList = listRules{
		namePunct:   "'()-./",
		sortBy:      []string{repositories.FieldCode, repositories.FieldName},
		parentParam: repositories.FieldProvinceCode,
		parentKind:  areacode.Province,
	}
	districtList = listRules{
		namePunct:   "'()-./",
		sortBy:      []string{repositories.FieldCode, repositories.FieldName},
		parentParam: repositories.FieldRegencyCode,
		parentKind:  areacode.Regency,
	}
	villageList = listRules{
		namePunct:   "'()-./",
		sortBy:      []string{repositories.FieldCode, repositories.FieldName},
		parentParam: repositories.FieldDistrictCode,
		parentKind:  areacode.District,
	}
	islandList = listRules{
		namePunct:   "'-/",
		sortBy:      []string{repositories.FieldCode, repositories.FieldCoordinate, repositories.FieldName},
		parentParam: repositories.FieldRegencyCode,
		parentKind:  areacode.Regency,
	}
)

// nested drops the parent query filter; nested routes take the parent from the path.
func (r listRules) nested() listRules {
	r.parentParam = ""
	return r
}

// validateList checks a list request and returns the query to run. Every
// violation is reported, not only the first.
func validateList(v url.Values, rules listRules, maxLimit int) (domain.ListQuery, error) {
	var (
		q    domain.ListQuery
		errs domain.ValidationErrors
	)

	if name := utils.NormalizeSpace(v.Get("name")); name != "" {
		if err := validateName(name, rules.namePunct); err != nil {
			errs.Merge(err)
		}
		q.Name = name
	}

	if rules.parentParam != "" {
		if code := utils.TrimOrEmpty(v.Get(rules.parentParam)); code != "" {
			if err := areacode.Validate(rules.parentKind, rules.parentParam, code); err != nil {
				errs.Merge(err)
			}
			q.ParentCode = code
		}
	}

	if sortBy := utils.TrimOrEmpty(v.Get("sortBy")); sortBy != "" {
		if !slices.Contains(rules.sortBy, sortBy) {
			errs.Add("sortBy", "must be one of the following values: "+strings.Join(rules.sortBy, ", "))
		}
		q.Sort.SortBy = sortBy
	}
	if raw := utils.TrimOrEmpty(v.Get("sortOrder")); raw != "" {
		order, ok := pagination.ParseOrder(raw)
		if !ok {
			errs.Add("sortOrder", "must be one of the following values: asc, desc")
		}
		q.Sort.SortOrder = order
	}

	page, pageOK := positiveInt(v, "page", &errs)
	if limit, ok := positiveInt(v, "limit", &errs); ok {
		if maxLimit > 0 && limit > maxLimit {
			errs.Add("limit", fmt.Sprintf("must not be greater than %d", maxLimit))
		}
		q.Page.Limit = limit
	}
	if pageOK {
		if last := lastPage(q.Page.Limit, maxLimit); page > last {
			errs.Add("page", fmt.Sprintf("must not be greater than %d", last))
		}
		q.Page.Page = page
	}

	if err := errs.OrNil(); err != nil {
		return domain.ListQuery{}, err
	}
	return q, nil
}

// validateName applies the length bound and rejects symbols other than
// whitespace and the allowed punctuation.
func validateName(name, allowed string) error {
	var errs domain.ValidationErrors
	if n := utf8.RuneCountInString(name); n < nameMinLen || n > nameMaxLen {
		errs.Add("name", fmt.Sprintf("must be between %d and %d characters", nameMinLen, nameMaxLen))
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || strings.ContainsRune(allowed, r) {
			continue
		}
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			errs.Add("name", "must not contain any symbols")
			break
		}
	}
	return errs.OrNil()
}

// positiveInt reads an optional positive integer parameter.
func positiveInt(v url.Values, key string, errs *domain.ValidationErrors) (int, bool) {
	raw := utils.TrimOrEmpty(v.Get(key))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		errs.Add(key, "must be a positive integer")
		return 0, false
	}
	return n, true
}

// lastPage is the highest page whose offset fits in an int. Without an
// explicit limit the widest allowed one is assumed.
func lastPage(limit, maxLimit int) int {
	if limit < 1 {
		limit = maxLimit
	}
	if limit < 1 {
		limit = pagination.MaxLimit
	}
	return math.MaxInt/limit + 1
}

// validateCode checks a path code.
func validateCode(kind areacode.Kind, code string) error {
	var errs domain.ValidationErrors
	errs.Merge(areacode.Validate(kind, "code", code))
	return errs.OrNil()
}
