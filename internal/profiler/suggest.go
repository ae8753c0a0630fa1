package profiler

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// suggestThreshold 低于该相似度不给出候选
const suggestThreshold = 0.5

// closestName 在候选名中找与目标最接近的一个，没有足够接近的返回空串
func closestName(target string, candidates []string) string {
	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		if score := nameSimilarity(target, c); score > bestScore {
			best = c
			bestScore = score
		}
	}
	if bestScore < suggestThreshold {
		return ""
	}
	return best
}

// nameSimilarity 基于编辑距离的名称相似度
func nameSimilarity(name1, name2 string) float64 {
	n1 := strings.ToLower(name1)
	n2 := strings.ToLower(name2)

	// 完全匹配
	if n1 == n2 {
		return 1.0
	}

	// 包含关系
	if strings.Contains(n1, n2) || strings.Contains(n2, n1) {
		return 0.8
	}

	r1 := []rune(n1)
	r2 := []rune(n2)
	maxLen := len(r1)
	if len(r2) > maxLen {
		maxLen = len(r2)
	}
	if maxLen == 0 {
		return 0
	}

	distance := levenshtein.DistanceForStrings(r1, r2, levenshtein.DefaultOptions)
	return 1.0 - float64(distance)/float64(maxLen)
}
