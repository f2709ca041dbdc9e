package server

const indexHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Prompt Architect</title>
  <style>
    body { font-family: "Segoe UI", sans-serif; margin: 0; background: #0f172a; color: #e2e8f0; }
    .wrap { max-width: 860px; margin: 0 auto; padding: 24px; }
    h1 { font-size: 20px; }
    textarea { width: 100%; min-height: 280px; background: #1e293b; color: #a5f3fc; border: 1px solid #334155; border-radius: 8px; padding: 12px; font-family: monospace; }
    button { background: #0ea5e9; color: #fff; border: 0; border-radius: 6px; padding: 10px 16px; margin: 8px 8px 8px 0; cursor: pointer; }
    button:disabled { opacity: .5; cursor: wait; }
    #analysis { background: #1e293b; border-radius: 8px; padding: 12px; min-height: 48px; white-space: pre-wrap; }
    #image { max-width: 100%; border-radius: 8px; margin-top: 12px; }
    .error { color: #f87171; }
  </style>
</head>
<body>
  <div class="wrap">
    <h1>Prompt Architect</h1>
    <p>Paste or edit a structured JSON prompt, then render or analyze it.</p>
    <textarea id="doc" spellcheck="false"></textarea>
    <div>
      <label>Aspect ratio
        <select id="aspect">
          <option value="1:1" selected>1:1</option>
          <option value="4:3">4:3</option>
        </select>
      </label>
    </div>
    <button id="generate">Generate Image</button>
    <button id="analyze">Analyze Prompt</button>
    <div id="analysis"></div>
    <img id="image" alt="" />
  </div>
  <script>
    const docEl = document.getElementById('doc');
    const analysisEl = document.getElementById('analysis');
    const imageEl = document.getElementById('image');

    async function post(path, body) {
      const resp = await fetch(path, {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify(body),
      });
      return resp.json();
    }

    document.getElementById('generate').addEventListener('click', async (ev) => {
      ev.target.disabled = true;
      analysisEl.textContent = '';
      try {
        const result = await post('/generate-image', {
          prompt: docEl.value,
          aspectRatio: document.getElementById('aspect').value,
        });
        if (result.imageData) {
          imageEl.src = result.imageData;
        } else {
          analysisEl.innerHTML = '<span class="error"></span>';
          analysisEl.firstChild.textContent = result.error || 'Image generation failed. Check your prompt or API status.';
        }
      } catch (err) {
        analysisEl.innerHTML = '<span class="error">Failed to connect to the Image API. Check your network or API configuration.</span>';
      } finally {
        ev.target.disabled = false;
      }
    });

    document.getElementById('analyze').addEventListener('click', async (ev) => {
      ev.target.disabled = true;
      try {
        const result = await post('/analyze-prompt', { jsonOutput: docEl.value });
        if (result.analysis) {
          analysisEl.textContent = result.analysis;
        } else {
          analysisEl.innerHTML = '<span class="error"></span>';
          analysisEl.firstChild.textContent = result.error || 'Text analysis failed to return content. Check the prompt structure.';
        }
      } catch (err) {
        analysisEl.innerHTML = '<span class="error">Failed to connect to the Image API. Check your network or API configuration.</span>';
      } finally {
        ev.target.disabled = false;
      }
    });
  </script>
</body>
</html>`
