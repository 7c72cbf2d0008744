package knn

// score computes accuracy, the confusion matrix and macro-averaged
// precision, recall and F1 over the full label set.
func score(labels, actual, predicted []string) Report {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	confusion := make([][]int, len(labels))
	for i := range confusion {
		confusion[i] = make([]int, len(labels))
	}

	correct := 0
	for i := range actual {
		confusion[index[actual[i]]][index[predicted[i]]]++
		if actual[i] == predicted[i] {
			correct++
		}
	}

	var precision, recall, f1 float64
	for i := range labels {
		tp := confusion[i][i]
		var fp, fn int
		for j := range labels {
			if j == i {
				continue
			}
			fp += confusion[j][i]
			fn += confusion[i][j]
		}

		var p, r float64
		if tp+fp > 0 {
			p = float64(tp) / float64(tp+fp)
		}
		if tp+fn > 0 {
			r = float64(tp) / float64(tp+fn)
		}
		precision += p
		recall += r
		if p+r > 0 {
			f1 += 2 * p * r / (p + r)
		}
	}

	n := float64(len(labels))
	return Report{
		Accuracy:  float64(correct) / float64(len(actual)),
		Precision: precision / n,
		Recall:    recall / n,
		F1:        f1 / n,
		Labels:    labels,
		Confusion: confusion,
	}
}
