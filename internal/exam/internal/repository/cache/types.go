// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"time"
)

//go:generate mockgen -source=./types.go -package=cachemocks -destination=./mocks/exam.mock.go ExamCache
type ExamCache interface {
	// Get 没有命中返回 ErrKeyNotFound
	Get(ctx context.Context, key Key, val any) error
	Set(ctx context.Context, key Key, val any, expiration time.Duration) error
	DeleteStats(ctx context.Context, uid int64) error
	// ClearAll 让所有的缓存失效
	ClearAll(ctx context.Context) error
}
