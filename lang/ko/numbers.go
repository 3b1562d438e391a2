package ko

import (
	"strconv"
	"strings"

	"github.com/az-ai-labs/chronolex/rule"
	"github.com/az-ai-labs/chronolex/value"
)

// addNumberRules mirrors original_source/rules/src/ko.rs's rules_numbers: the
// 영/공/빵 zero terminals, Sino-Korean digits 일..구 and the 십 (ten) scale,
// the native 하나..아홉 counting set, and numeric fallbacks.
func addNumberRules(b *rule.Builder) {
	b.Rule1("integer 0", rule.Regex(b.Reg(`영|공|빵`)), func(rule.Match) (value.Value, bool) {
		return value.Integer{Value: 0}, true
	})
	b.Rule1("half", rule.Regex(b.Reg(`반`)), func(rule.Match) (value.Value, bool) {
		return value.Float{Value: 0.5}, true
	})
	b.Rule1("few", rule.Regex(b.Reg(`몇`)), func(rule.Match) (value.Value, bool) {
		return value.Integer{Value: 3}, true
	})

	sino := map[string]int64{
		"일": 1, "이": 2, "삼": 3, "사": 4, "오": 5, "육": 6, "칠": 7, "팔": 8, "구": 9, "십": 10,
	}
	b.Rule1("integer (sino-korean 1..10)",
		rule.Regex(b.Reg(`(일|이|삼|사|오|육|칠|팔|구|십)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := sino[m.Groups[1]]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})
	b.Rule2("integer (11..19)",
		rule.IntegerCheck(func(i value.Integer) bool { return i.Value == 10 }),
		rule.IntegerCheckByRange(1, 9),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value + bm.Value.(value.Integer).Value}, true
		})
	b.Rule2("integer (20..90)",
		rule.IntegerCheckByRange(2, 9),
		rule.IntegerCheck(func(i value.Integer) bool { return i.Value == 10 }),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value * bm.Value.(value.Integer).Value}, true
		})
	b.Rule2("integer (21..99)",
		rule.IntegerCheck(func(i value.Integer) bool { return i.Value >= 20 && i.Value <= 90 && i.Value%10 == 0 }),
		rule.IntegerCheckByRange(1, 9),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value + bm.Value.(value.Integer).Value}, true
		})

	native := map[string]int64{
		"하나": 1, "둘": 2, "셋": 3, "넷": 4, "다섯": 5, "여섯": 6, "일곱": 7, "여덟": 8, "아홉": 9,
	}
	b.Rule1("integer (1..9) native",
		rule.Regex(b.Reg(`(하나|둘|셋|넷|다섯|여섯|일곱|여덟|아홉)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := native[m.Groups[1]]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})
	ordinalNative := map[string]int64{"한": 1, "첫": 1, "두": 2, "세": 3, "네": 4}
	b.Rule1("integer (1..4) for ordinals",
		rule.Regex(b.Reg(`(한|첫|두|세|네)`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := ordinalNative[m.Groups[1]]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})

	scales := map[string]int64{"백": 100, "천": 1000, "만": 10000, "억": 100000000}
	b.Rule1("scale words",
		rule.Regex(b.Reg(`백|천|만|억`)),
		func(m rule.Match) (value.Value, bool) {
			v, ok := scales[m.Groups[0]]
			if !ok {
				return nil, false
			}
			return value.Integer{Value: v, Grp: true}, true
		})
	b.Rule2("<n> <scale>",
		rule.IntegerCheckByRange(1, 9999),
		rule.IntegerCheck(func(i value.Integer) bool { return i.Grp }),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value * bm.Value.(value.Integer).Value, Grp: true}, true
		})
	b.Rule2("intersect (scaled + remainder)",
		rule.IntegerCheck(func(i value.Integer) bool { return i.Grp }),
		rule.IntegerCheckByRange(1, 9999),
		func(a, bm rule.Match) (value.Value, bool) {
			return value.Integer{Value: a.Value.(value.Integer).Value + bm.Value.(value.Integer).Value, Grp: true}, true
		})

	b.Rule1("integer (numeric)",
		rule.Regex(b.Reg(`(\d{1,18})`)),
		func(m rule.Match) (value.Value, bool) {
			v, err := strconv.ParseInt(m.Groups[1], 10, 64)
			if err != nil {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})
	b.Rule1("integer with thousands separator ,",
		rule.Regex(b.Reg(`(\d{1,3}(,\d\d\d){1,5})`)),
		func(m rule.Match) (value.Value, bool) {
			v, err := strconv.ParseInt(strings.ReplaceAll(m.Groups[1], ",", ""), 10, 64)
			if err != nil {
				return nil, false
			}
			return value.Integer{Value: v}, true
		})
}
