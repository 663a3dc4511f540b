package domain

import "time"

const (
	DisplayDateLayout = "02 Jan 2006"
	DisplayTimeLayout = "15:04"
)

type Thread struct {
	Id                 ThreadId  `json:"id"`
	Author             Author    `json:"author"`
	Title              string    `json:"title"`
	Content            string    `json:"content"`
	CreatedAt          time.Time `json:"createdAt"`
	CreatedDate        string    `json:"createdDate"`
	CreatedTime        string    `json:"createdTime"`
	Upvotes            int       `json:"upvotes"`
	Downvotes          int       `json:"downvotes"`
	ViewCount          int       `json:"viewCount"`
	CommentCount       int       `json:"commentCount"`
	HasTechnicianReply bool      `json:"hasTechnicianReply"`
	Media              *Media    `json:"media,omitempty"`
}

// Score is the display ranking used by the "most active" sort.
func (t *Thread) Score() int {
	return t.Upvotes - t.Downvotes
}

// CreatedDay reduces creation to its calendar day. The "oldest" sort
// deliberately compares days only, so two threads from the same day tie
// regardless of time.
func (t *Thread) CreatedDay() time.Time {
	y, m, d := t.CreatedAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.CreatedAt.Location())
}

type Comment struct {
	Id                CommentId `json:"id"`
	ThreadId          ThreadId  `json:"threadId"`
	Author            Author    `json:"author"`
	Content           string    `json:"content"`
	CreatedAt         time.Time `json:"createdAt"`
	CreatedDate       string    `json:"createdDate"`
	CreatedTime       string    `json:"createdTime"`
	IsTechnicianReply bool      `json:"isTechnicianReply"`
	Media             *Media    `json:"media,omitempty"`
}
