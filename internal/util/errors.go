package util

import "errors"

var (
	ErrUserNotFound     = errors.New("用户不存在")
	ErrUsernameTaken    = errors.New("该用户名已被注册")
	ErrCourseNotFound   = errors.New("course not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrVideoNotFound    = errors.New("video not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNoSessionsFound  = errors.New("no sessions found for this user and course")
	ErrUserHasCourses  = errors.New("用户名下仍有课程，不能直接删除")
	ErrInvalidImageExt = errors.New("仅允许上传图片文件")
	ErrInvalidVideoExt = errors.New("仅允许上传视频文件")
)
