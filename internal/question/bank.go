package question

import "crorepati-quiz-service/internal/domain"

// DefaultBank returns the built-in question bank the game ships with.
// Bank questions are immutable and never expire; they are used whenever no
// live teacher-authored content exists.
func DefaultBank() []domain.Question {
	return []domain.Question{
		{
			ID:   "default-1",
			Text: "નીચેનામાંથી કયો આકાર વર્તુળ છે?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "⬜ ચોરસ",
				domain.OptionB: "⚪ વર્તુળ",
				domain.OptionC: "🔺 ત્રિકોણ",
				domain.OptionD: "▬ લંબચોરસ",
			},
			CorrectAnswer: domain.OptionB,
			PrizeAmount:   100,
		},
		{
			ID:   "default-2",
			Text: "ભારતની રાજધાની કઈ છે?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "મુંબઈ",
				domain.OptionB: "કોલકાતા",
				domain.OptionC: "નવી દિલ્હી",
				domain.OptionD: "ચેન્નાઈ",
			},
			CorrectAnswer: domain.OptionC,
			PrizeAmount:   500,
		},
		{
			ID:   "default-3",
			Text: "અઠવાડિયામાં કેટલા દિવસ હોય છે?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "૫ દિવસ",
				domain.OptionB: "૬ દિવસ",
				domain.OptionC: "૭ દિવસ",
				domain.OptionD: "૮ દિવસ",
			},
			CorrectAnswer: domain.OptionC,
			PrizeAmount:   1000,
		},
		{
			ID:   "default-4",
			Text: "મહાત્મા ગાંધીનું જન્મસ્થળ કયું છે?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "અમદાવાદ",
				domain.OptionB: "પોરબંદર",
				domain.OptionC: "રાજકોટ",
				domain.OptionD: "સુરત",
			},
			CorrectAnswer: domain.OptionB,
			PrizeAmount:   2000,
		},
		{
			ID:   "default-5",
			Text: "પાણીનું રાસાયણિક સૂત્ર શું છે?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "CO2",
				domain.OptionB: "O2",
				domain.OptionC: "H2O",
				domain.OptionD: "NaCl",
			},
			CorrectAnswer: domain.OptionC,
			PrizeAmount:   5000,
		},
		{
			ID:   "default-6",
			Text: "ગુજરાતનું રાજ્ય પ્રાણી કયું છે?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "વાઘ",
				domain.OptionB: "સિંહ",
				domain.OptionC: "હાથી",
				domain.OptionD: "ગેંડો",
			},
			CorrectAnswer: domain.OptionB,
			PrizeAmount:   10000,
		},
		{
			ID:   "default-7",
			Text: "ભારતનો સૌથી મોટો રાજ્ય (વિસ્તારની દ્રષ્ટિએ) કયું છે?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "મધ્ય પ્રદેશ",
				domain.OptionB: "ઉત્તર પ્રદેશ",
				domain.OptionC: "રાજસ્થાન",
				domain.OptionD: "મહારાષ્ટ્ર",
			},
			CorrectAnswer: domain.OptionC,
			PrizeAmount:   20000,
		},
		{
			ID:   "default-8",
			Text: "સૂર્ય કઈ દિશામાં ઉગે છે?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "પશ્ચિમ",
				domain.OptionB: "ઉત્તર",
				domain.OptionC: "દક્ષિણ",
				domain.OptionD: "પૂર્વ",
			},
			CorrectAnswer: domain.OptionD,
			PrizeAmount:   40000,
		},
		{
			ID:   "default-9",
			Text: "ગુજરાતી ભાષાના પિતા કોણ ગણાય છે?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "નર્મદ",
				domain.OptionB: "મહાત્મા ગાંધી",
				domain.OptionC: "દલપતરામ",
				domain.OptionD: "પ્રેમાનંદ",
			},
			CorrectAnswer: domain.OptionA,
			PrizeAmount:   80000,
		},
		{
			ID:   "default-10",
			Text: "ભારતની સૌથી લાંબી નદી કઈ છે?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "યમુના",
				domain.OptionB: "ગંગા",
				domain.OptionC: "નર્મદા",
				domain.OptionD: "ગોદાવરી",
			},
			CorrectAnswer: domain.OptionB,
			PrizeAmount:   160000,
		},
		{
			ID:   "default-11",
			Text: "ભારતનું રાષ્ટ્રીય પક્ષી કયું છે?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "કબૂતર",
				domain.OptionB: "મોર",
				domain.OptionC: "કોયલ",
				domain.OptionD: "પોપટ",
			},
			CorrectAnswer: domain.OptionB,
			PrizeAmount:   320000,
		},
		{
			ID:   "default-12",
			Text: "ગુજરાતના પ્રથમ મુખ્યમંત્રી કોણ હતા?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "જીવરાજ મહેતા",
				domain.OptionB: "હિતેન્દ્ર દેસાઈ",
				domain.OptionC: "ચીમનભાઈ પટેલ",
				domain.OptionD: "બાબુભાઈ પટેલ",
			},
			CorrectAnswer: domain.OptionA,
			PrizeAmount:   640000,
		},
		{
			ID:   "default-13",
			Text: "પૃથ્વી સૂર્યની આસપાસ ફરવામાં કેટલો સમય લે છે?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "૨૪ કલાક",
				domain.OptionB: "૩૦ દિવસ",
				domain.OptionC: "૩૬૫ દિવસ",
				domain.OptionD: "૧૨ મહિના",
			},
			CorrectAnswer: domain.OptionC,
			PrizeAmount:   1250000,
		},
		{
			ID:   "default-14",
			Text: "ભારતના સૌથી ઊંચા ઈમારત કઈ છે?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "કુતુબ મિનાર",
				domain.OptionB: "ચારમિનાર",
				domain.OptionC: "પલ્સા 330",
				domain.OptionD: "સ્ટેચ્યુ ઓફ યુનિટી",
			},
			CorrectAnswer: domain.OptionC,
			PrizeAmount:   2500000,
		},
		{
			ID:   "default-15",
			Text: "ગુજરાતનો સ્થાપના દિવસ ક્યારે છે?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "૧ મે",
				domain.OptionB: "૧૫ ઓગસ્ટ",
				domain.OptionC: "૨૬ જાન્યુઆરી",
				domain.OptionD: "૧૪ નવેમ્બર",
			},
			CorrectAnswer: domain.OptionA,
			PrizeAmount:   5000000,
		},
		{
			ID:   "default-16",
			Text: "સૌરમંડળમાં સૌથી મોટો ગ્રહ કયો છે?",
			Options: map[domain.OptionKey]string{
				domain.OptionA: "શનિ",
				domain.OptionB: "પૃથ્વી",
				domain.OptionC: "ગુરુ",
				domain.OptionD: "મંગળ",
			},
			CorrectAnswer: domain.OptionC,
			PrizeAmount:   10000000,
		},
	}
}
