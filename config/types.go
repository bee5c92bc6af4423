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

package config

import "time"

// ExamConfig 对应配置文件里面的 exam
type ExamConfig struct {
	SecondsPerQuestion int           `yaml:"secondsPerQuestion"`
	SubmitTimeout      time.Duration `yaml:"submitTimeout"`
	// 按天统计趋势时使用的时区
	Timezone string         `yaml:"timezone"`
	Cache    CacheTTLConfig `yaml:"cache"`
}

type CacheTTLConfig struct {
	HistoryTTL time.Duration `yaml:"historyTTL"`
	DetailTTL  time.Duration `yaml:"detailTTL"`
	StatsTTL   time.Duration `yaml:"statsTTL"`
	FiltersTTL time.Duration `yaml:"filtersTTL"`
}

// DefaultExamConfig 配置文件里面没有设置的字段使用这里的值
func DefaultExamConfig() ExamConfig {
	return ExamConfig{
		SecondsPerQuestion: 60,
		SubmitTimeout:      10 * time.Second,
		Timezone:           "Asia/Kolkata",
		Cache: CacheTTLConfig{
			HistoryTTL: 5 * time.Minute,
			DetailTTL:  time.Hour,
			StatsTTL:   time.Hour,
			FiltersTTL: time.Hour,
		},
	}
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	SessionEncryptedKey string `yaml:"sessionEncryptedKey"`
	Cookie              struct {
		Domain string `yaml:"domain"`
	} `yaml:"cookie"`
}

type KafkaConfig struct {
	Network   string   `yaml:"network"`
	Addresses []string `yaml:"addresses"`
	Topics    []TopicConfig `yaml:"topics"`
}

type TopicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}
