package page

import (
	"fmt"
	"net/url"
	"strconv"

	"ufresher/internal/app/catalog"
)

// CollegeQuery reads the college list filters from query parameters
// search, location, stream and sort.
func CollegeQuery(params url.Values) catalog.CollegeFilter {
	return catalog.CollegeFilter{
		Search:   params.Get("search"),
		Location: params.Get("location"),
		Stream:   params.Get("stream"),
		Sort:     params.Get("sort"),
	}
}

// MentorQuery reads the mentor list filters. experience takes a bucket
// such as "5+"; rating is a minimum rating.
func MentorQuery(params url.Values) (catalog.MentorFilter, error) {
	f := catalog.MentorFilter{
		Search:       params.Get("search"),
		Skill:        params.Get("skill"),
		College:      params.Get("college"),
		Availability: params.Get("availability"),
		Sort:         params.Get("sort"),
	}

	years, err := catalog.ParseExperienceBucket(params.Get("experience"))
	if err != nil {
		return f, fmt.Errorf("%w: %v", ErrBadParam, err)
	}
	f.MinExperience = years

	if raw := params.Get("rating"); raw != "" {
		f.MinRating, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, fmt.Errorf("%w: rating %q", ErrBadParam, raw)
		}
	}

	return f, nil
}

// ProjectQuery reads the project list filters search and skill.
func ProjectQuery(params url.Values) catalog.ProjectFilter {
	return catalog.ProjectFilter{
		Search: params.Get("search"),
		Skill:  params.Get("skill"),
	}
}
