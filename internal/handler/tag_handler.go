package handler

import (
	"eventmarket/internal/model/query"
	"eventmarket/internal/service"
	"eventmarket/pkg/util"

	"github.com/labstack/echo/v4"
)

type TagHandler struct {
	tagService *service.TagService
}

func NewTagHandler(tagService *service.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// CreateTagHandler 主办方打标入口，由活动编辑页调用
func (handler *TagHandler) CreateTagHandler(c echo.Context) error {
	req := new(query.TagCreateReq)
	if err := c.Bind(req); err != nil {
		return util.ErrorRequestParam(c)
	}
	tag, err := handler.tagService.TagEntity(req)
	if err != nil {
		return util.ResponseError(c, err)
	}
	return util.NormalResponseData(c, tag)
}

func (handler *TagHandler) ConfirmTagHandler(c echo.Context) error {
	tagId := c.Param("id")
	if tagId == "" {
		return util.ErrorRequestParam(c)
	}
	tag, err := handler.tagService.ConfirmTag(tagId)
	if err != nil {
		return util.ResponseError(c, err)
	}
	return util.NormalResponseData(c, tag)
}

func (handler *TagHandler) UntagHandler(c echo.Context) error {
	tagId := c.Param("id")
	if tagId == "" {
		return util.ErrorRequestParam(c)
	}
	if err := handler.tagService.UntagEntity(tagId); err != nil {
		return util.ResponseError(c, err)
	}
	return util.NormalResponseData(c, nil)
}

func (handler *TagHandler) EventTagsHandler(c echo.Context) error {
	eventId := c.Param("eventId")
	if eventId == "" {
		return util.ErrorRequestParam(c)
	}
	tags, err := handler.tagService.FetchEventTags(eventId)
	if err != nil {
		return util.ResponseError(c, err)
	}
	return util.ResponseData(c, tags)
}
