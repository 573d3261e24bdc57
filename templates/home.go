// Package templates holds the HTML components served by the landing page.
package templates

import "github.com/a-h/templ"

const homeHTML = `<!DOCTYPE html>
<html lang="it">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Generatore Preventivi AbitaLab</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 1200px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; margin-bottom: 30px; }
        .card { background: #f5f5f5; padding: 20px; border-radius: 8px; margin-bottom: 20px; }
        .btn { background: #003366; color: white; padding: 10px 20px; border: none; border-radius: 4px; cursor: pointer; }
        .btn:hover { background: #004080; }
        .example-btn { background: #28a745; }
        .example-btn:hover { background: #218838; }
        pre { background: #f8f9fa; padding: 15px; border-radius: 4px; overflow-x: auto; }
        .grid { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; }
        @media (max-width: 768px) { .grid { grid-template-columns: 1fr; } }
    </style>
</head>
<body>
    <div class="header">
        <h1>Generatore Preventivi AbitaLab</h1>
        <p>Sistema professionale per la generazione di preventivi in formato PDF</p>
    </div>

    <div class="card">
        <h2>Test Rapido</h2>
        <p>Genera subito un preventivo di esempio per vedere il risultato:</p>
        <form method="post" action="/genera-esempio" target="_blank">
            <button class="btn example-btn" type="submit">Genera Preventivo di Esempio</button>
        </form>
    </div>

    <div class="card">
        <h2>Struttura Dati JSON</h2>
        <p>Esempio della struttura JSON richiesta per generare un preventivo:</p>
        <pre><code>{
  "output": {
    "numero": "1017/2025",
    "data": "30/07/2025",
    "cliente": {
      "nome": "MARIO ROSSI",
      "indirizzo": "VIA ROMA 123",
      "citta": "20121 Milano (MI)",
      "cantiere": "VIA ROMA 123"
    },
    "posizioni": [
      {
        "numero": 1,
        "voci": [
          {
            "descrizione": "Costruzione edificio residenziale",
            "pz": 1,
            "qta": 1,
            "um": "a corpo",
            "prezzo": 200000.00
          }
        ]
      }
    ],
    "iva_percentuale": 22.0
  }
}</code></pre>
    </div>

    <div class="card">
        <h2>Endpoints Disponibili</h2>
        <ul>
            <li><strong>POST /genera-preventivo</strong> - Genera PDF da dati JSON</li>
            <li><strong>POST /genera-preventivo/excel</strong> - Genera file Excel da dati JSON</li>
            <li><strong>POST /genera-esempio</strong> - Genera preventivo di esempio</li>
            <li><strong>GET /health</strong> - Verifica stato servizio</li>
        </ul>
    </div>
</body>
</html>`

// Home returns the static landing page component.
func Home() templ.Component {
	return templ.Raw(homeHTML)
}
