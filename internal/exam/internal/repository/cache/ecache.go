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
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

var ErrKeyNotFound = errors.New("缓存未命中")

const generationKey = "gen"

// Key 不带代数的缓存 key，真正的 key 会在前面拼上代数
type Key string

func HistoryKey(uid int64, page, limit int) Key {
	return Key(fmt.Sprintf("history:%d:%d:%d", uid, page, limit))
}

func StatsKey(uid int64) Key {
	return Key(fmt.Sprintf("stats:%d", uid))
}

func DetailKey(id, uid int64) Key {
	return Key(fmt.Sprintf("detail:%d:%d", id, uid))
}

func FiltersKey() Key {
	return "filters"
}

type ExamECache struct {
	ec ecache.Cache
}

func NewExamECache(ec ecache.Cache) ExamCache {
	return &ExamECache{
		ec: &ecache.NamespaceCache{
			Namespace: "exam:",
			C:         ec,
		},
	}
}

func (e *ExamECache) Get(ctx context.Context, key Key, val any) error {
	k, err := e.key(ctx, key)
	if err != nil {
		return err
	}
	res := e.ec.Get(ctx, k)
	if res.KeyNotFound() {
		return ErrKeyNotFound
	}
	if res.Err != nil {
		return errors.Wrap(res.Err, "查询缓存出错")
	}
	str, ok := res.Val.(string)
	if !ok {
		return fmt.Errorf("缓存数据类型错误 %T", res.Val)
	}
	return errors.Wrap(json.Unmarshal([]byte(str), val), "反序列化缓存数据失败")
}

func (e *ExamECache) Set(ctx context.Context, key Key, val any, expiration time.Duration) error {
	data, err := json.Marshal(val)
	if err != nil {
		return errors.Wrap(err, "序列化缓存数据失败")
	}
	k, err := e.key(ctx, key)
	if err != nil {
		return err
	}
	return e.ec.Set(ctx, k, string(data), expiration)
}

func (e *ExamECache) DeleteStats(ctx context.Context, uid int64) error {
	k, err := e.key(ctx, StatsKey(uid))
	if err != nil {
		return err
	}
	_, err = e.ec.Delete(ctx, k)
	return err
}

// ClearAll 换一个新的代数，旧的 key 等待自然过期
func (e *ExamECache) ClearAll(ctx context.Context) error {
	return e.ec.Set(ctx, generationKey, time.Now().UnixNano(), 0)
}

func (e *ExamECache) key(ctx context.Context, key Key) (string, error) {
	gen, err := e.generation(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d:%s", gen, key), nil
}

func (e *ExamECache) generation(ctx context.Context) (int64, error) {
	res := e.ec.Get(ctx, generationKey)
	if res.KeyNotFound() {
		return 0, nil
	}
	if res.Err != nil {
		return 0, errors.Wrap(res.Err, "查询缓存代数出错")
	}
	return res.AsInt64()
}
