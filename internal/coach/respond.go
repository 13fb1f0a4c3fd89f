package coach

import "strings"

// Topic names the reply a question matched.
type Topic string

const (
	TopicSavings    Topic = "savings"
	TopicAnalysis   Topic = "analysis"
	TopicInvestment Topic = "investment"
	TopicOverspend  Topic = "overspending"
	TopicGeneral    Topic = "general"
)

// Reply is the coach's answer to one question.
type Reply struct {
	Topic Topic  `json:"topic"`
	Text  string `json:"text"`
}

// Greeting opens every conversation.
const Greeting = "Hai! Saya AI Coach keuangan Anda. Saya di sini untuk membantu Anda membuat keputusan keuangan yang lebih baik. Ada yang bisa saya bantu hari ini?"

type rule struct {
	topic    Topic
	keywords []string
	text     string
}

// Checked in order; the first rule with a matching keyword wins.
var rules = []rule{
	{TopicSavings, []string{"hemat", "saving"}, savingsText},
	{TopicAnalysis, []string{"analisis", "pengeluaran"}, analysisText},
	{TopicInvestment, []string{"investasi", "invest"}, investmentText},
	{TopicOverspend, []string{"boros"}, overspendText},
}

// Respond picks the canned reply for question. Matching is a
// case-insensitive substring test.
func Respond(question string) Reply {
	q := strings.ToLower(question)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return Reply{Topic: r.topic, Text: r.text}
			}
		}
	}
	return Reply{Topic: TopicGeneral, Text: generalText}
}

var suggested = []string{
	"Bagaimana cara menghemat lebih banyak?",
	"Analisis pengeluaran saya",
	"Tips investasi untuk pemula",
	"Apakah saya boros?",
}

// SuggestedQuestions returns the prompts offered on a fresh conversation.
func SuggestedQuestions() []string { return append([]string(nil), suggested...) }

const savingsText = `Berdasarkan analisis saya, Anda sudah melakukan pekerjaan yang sangat baik! Tingkat tabungan Anda 56.7% - luar biasa! 🎉

Untuk mengoptimalkan lebih lanjut:

1. Pengeluaran makanan Anda (Rp 1.5jt) bisa dikurangi dengan meal prep 2-3x seminggu
2. Manfaatkan promo kartu kredit untuk belanja bulanan
3. Review langganan digital yang jarang digunakan

Dengan optimasi ini, Anda bisa menabung tambahan ~Rp 500rb/bulan! 💰`

const analysisText = `Mari saya analisis pola pengeluaran Anda:

📊 Breakdown:
• Makanan: 29% (Rp 1.5jt) - Sedikit tinggi
• Belanja: 24% (Rp 1.25jt) - Normal
• Transportasi: 15% (Rp 800rb) - Efisien
• Utilitas: 13% (Rp 650rb) - Baik

✅ Yang sudah bagus:
- Pengeluaran konsisten & terkontrol
- Tidak ada kategori yang ekstrem

💡 Peluang perbaikan:
- Kurangi makan di luar 1-2x/minggu
- Bandingkan harga sebelum belanja bulanan`

const investmentText = `Bagus sekali Anda mulai tertarik investasi! Dengan tingkat tabungan 56.7%, Anda punya modal kuat untuk mulai.

🌱 Untuk Pemula:

1. Emergency Fund dulu (3-6 bulan pengeluaran) = ~Rp 15-30 jt
2. Mulai dengan Reksa Dana Pasar Uang (risk rendah)
3. Setelah nyaman, coba Reksa Dana Campuran
4. Pelajari gradual tentang saham

⚠️ Ingat:
- Jangan investasi uang yang akan dipakai 1-2 tahun ke depan
- Diversifikasi itu penting
- Start small, learn big

Mau saya bantu hitung berapa yang bisa dialokasikan untuk investasi?`

const overspendText = `Tidak sama sekali! Data Anda menunjukkan:

✨ Tingkat tabungan: 56.7% (Excellent!)
📉 Pengeluaran vs pendapatan: Sangat sehat
📊 Spending pattern: Konsisten & terkontrol

Anda sebenarnya termasuk kategori "financially disciplined"! 🎯

Yang perlu dijaga:
- Maintain kebiasaan baik ini
- Jangan terlalu ketat sampai tidak menikmati hidup
- Balance antara saving & living

Kamu hebat! Keep it up! 💪`

const generalText = `Terima kasih atas pertanyaannya! Berdasarkan data keuangan Anda, saya melihat Anda sudah mengelola keuangan dengan sangat baik. Tingkat tabungan 56.7% adalah pencapaian luar biasa!

Ada aspek keuangan spesifik yang ingin kita diskusikan lebih dalam? Saya siap membantu dengan analisis detail. 😊`
