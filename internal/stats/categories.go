package stats

import "strings"

// OtherCategory is the bucket for habit entries matching no keyword list.
const OtherCategory = "기타"

// Category pairs a bucket name with the keywords that place a habit in it.
type Category struct {
	Name     string
	Keywords []string
}

// Categories is the fixed classification checklist for habit entries.
// Order is significant: the first category whose keyword list matches wins.
var Categories = []Category{
	{Name: "신체", Keywords: []string{"걷기", "산책", "스트레칭", "운동", "물", "숨", "호흡", "달리기"}},
	{Name: "정신", Keywords: []string{"명상", "휴식", "일기", "감사", "호흡법"}},
	{Name: "학습", Keywords: []string{"독서", "공부", "읽기", "단어", "학습"}},
	{Name: "업무", Keywords: []string{"정리", "메모", "계획", "업무"}},
	{Name: OtherCategory},
}

// Classify maps a habit task label onto a category by keyword containment.
func Classify(task string) string {
	for _, c := range Categories {
		for _, kw := range c.Keywords {
			if strings.Contains(task, kw) {
				return c.Name
			}
		}
	}
	return OtherCategory
}
