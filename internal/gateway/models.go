// SPDX-License-Identifier: AGPL-3.0-only
package gateway

import "time"

type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type Author struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Bio    string `json:"bio"`
	Avatar *Media `json:"avatar"`
	Banner *Media `json:"banner"`
}

// Count mirrors the API's _count expansion. Posts carry comments/reactions,
// profiles carry posts/followers/following; unused fields stay zero.
type Count struct {
	Comments  int `json:"comments"`
	Reactions int `json:"reactions"`
	Posts     int `json:"posts"`
	Followers int `json:"followers"`
	Following int `json:"following"`
}

type Post struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Tags      []string   `json:"tags"`
	Media     *Media     `json:"media"`
	Created   time.Time  `json:"created"`
	Updated   time.Time  `json:"updated"`
	Author    *Author    `json:"author"`
	Reactions []Reaction `json:"reactions"`
	Comments  []Comment  `json:"comments"`
	Count     *Count     `json:"_count"`
}

// Reaction is the server-aggregated view of all reactions for one symbol.
type Reaction struct {
	Symbol   string   `json:"symbol"`
	Count    int      `json:"count"`
	Reactors []string `json:"reactors"`
}

type Comment struct {
	ID      int       `json:"id"`
	PostID  int       `json:"postId"`
	Body    string    `json:"body"`
	Owner   string    `json:"owner"`
	Created time.Time `json:"created"`
	Author  *Author   `json:"author"`
}

type Profile struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Bio       string   `json:"bio"`
	Avatar    *Media   `json:"avatar"`
	Banner    *Media   `json:"banner"`
	Followers []Author `json:"followers"`
	Following []Author `json:"following"`
	Count     *Count   `json:"_count"`
}

// Session is the payload returned by login/register.
type Session struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Bio         string `json:"bio"`
	Avatar      *Media `json:"avatar"`
	Banner      *Media `json:"banner"`
	AccessToken string `json:"accessToken"`
}

type APIKey struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Key    string `json:"key"`
}

// Meta is the pagination block the API attaches to list responses. It is
// passed through to callers but is not the source of truth for last-page
// detection; see feed.PageView.
type Meta struct {
	IsFirstPage  bool `json:"isFirstPage"`
	IsLastPage   bool `json:"isLastPage"`
	CurrentPage  int  `json:"currentPage"`
	PreviousPage *int `json:"previousPage"`
	NextPage     *int `json:"nextPage"`
	PageCount    int  `json:"pageCount"`
	TotalCount   int  `json:"totalCount"`
}
