package types

import "time"

type AuthSuccess struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID     uint       `json:"id"`
	Email  string     `json:"email"`
	Name   string     `json:"name"`
	Topics []TopicDto `json:"topics"`
}

type TopicDto struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Subscription bool   `json:"subscription"`
}

type TopicsResponse struct {
	Topics []TopicDto `json:"topics"`
}

type CommentDto struct {
	ID       uint      `json:"id"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
	UserName string    `json:"userName"`
}

type CommentsResponse struct {
	Comments []CommentDto `json:"comments"`
}

type PostDto struct {
	ID         uint         `json:"id"`
	Date       time.Time    `json:"date"`
	Title      string       `json:"title"`
	Content    string       `json:"content"`
	AuthorName string       `json:"authorName"`
	TopicTitle string       `json:"topicTitle"`
	Comments   []CommentDto `json:"comments"`
}

type PostsResponse struct {
	Posts []PostDto `json:"posts"`
}
