//  Copyright (c) 2025 dingodb.com, Inc. All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http:www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package util

import (
	"net/http"

	myerr "eventmarket/pkg/error"

	"github.com/labstack/echo/v4"
)

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

func ResponseData(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func NormalResponseData(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, &Response{
		Code: http.StatusOK,
		Msg:  "success",
		Data: data,
	})
}

func ResponseError(c echo.Context, err error) error {
	if e, ok := err.(myerr.Error); ok {
		return ErrorEntryUnknown(c, e.StatusCode(), e.Error())
	}
	return ErrorEntryUnknown(c, http.StatusInternalServerError, err.Error())
}

func ErrorEntryUnknown(c echo.Context, code int, msg string) error {
	return c.JSON(code, &Response{
		Code: code,
		Msg:  msg,
	})
}

func ErrorRequestParam(c echo.Context) error {
	return ErrorEntryUnknown(c, http.StatusBadRequest, "请求参数错误")
}
