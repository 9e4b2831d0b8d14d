package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSummary_SetDuration_ZeroMeansAbsent(t *testing.T) {
	var s Summary
	s.SetDuration(PlayMain, 8.5)
	s.SetDuration(PlayExtended, 0)
	s.SetDuration(PlayMode("unknown"), 3)

	if h, ok := s.Duration(PlayMain); !ok || h != 8.5 {
		t.Fatalf("main 期望 8.5，实际=%v ok=%v", h, ok)
	}
	if _, ok := s.Duration(PlayExtended); ok {
		t.Fatalf("0 小时应视为未报告")
	}
	if _, ok := s.Duration(PlayMode("unknown")); ok {
		t.Fatalf("未知游玩方式不应有值")
	}

	// 先写入再写 0：应清空。
	s.SetDuration(PlayMain, 0)
	if s.Main != nil {
		t.Fatalf("写入 0 后 main 应为 nil")
	}
}

func TestSummary_JSON_OmitsUnreportedDurations(t *testing.T) {
	s := Summary{ID: 966, Name: "Bayonetta"}
	s.SetDuration(PlayCompletionist, 16.5)

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json.Marshal 失败：%v", err)
	}
	got := string(b)
	want := `{"id":966,"name":"Bayonetta","imageUrl":"","gameplayCompletionist":16.5}`
	if got != want {
		t.Fatalf("JSON 不一致：\n got=%s\nwant=%s", got, want)
	}
}

func TestStats_MarshalJSON_Flattens(t *testing.T) {
	retired, rating := 0.03, 0.86
	st := Stats{
		Counts:  map[string]string{"playing": "1.2K", "beat": "9.8K"},
		Retired: &retired,
		Rating:  &rating,
	}
	b, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("json.Marshal 失败：%v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("json.Unmarshal 失败：%v", err)
	}
	want := map[string]any{"playing": "1.2K", "beat": "9.8K", "retired": 0.03, "rating": 0.86}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("平铺结果不一致：got=%v want=%v", m, want)
	}

	if v, ok := st.Count("playing"); !ok || v != "1.2K" {
		t.Fatalf("Count(playing) 期望 1.2K，实际=%q ok=%v", v, ok)
	}
	if _, ok := st.Count("backlogs"); ok {
		t.Fatalf("不存在的标签应返回 ok=false")
	}
}

func TestGameplays_KindsAndConvertRows(t *testing.T) {
	var g Gameplays
	if kinds := g.Kinds(); len(kinds) != 0 {
		t.Fatalf("空 Gameplays 不应有类型：%v", kinds)
	}

	if rows := ConvertRows(nil, NewSpeedrunRow); rows != nil {
		t.Fatalf("空输入应返回 nil，实际=%v", rows)
	}

	g.Speedrun = ConvertRows([]Row{{FieldType: "Any%", FieldFastest: "14h"}}, NewSpeedrunRow)
	g.Single = ConvertRows([]Row{{FieldType: "Main Story"}}, NewSinglePlayerRow)

	want := []TableKind{TableSingle, TableSpeedrun}
	if got := g.Kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Kinds 期望 %v，实际 %v", want, got)
	}

	r := g.Speedrun[0]
	if r.Type == nil || *r.Type != "Any%" || r.Fastest == nil || *r.Fastest != "14h" {
		t.Fatalf("speedrun 行转换不正确：%+v", r)
	}
	if r.Polled != nil || r.Slowest != nil {
		t.Fatalf("缺失字段应为 nil：%+v", r)
	}
}
