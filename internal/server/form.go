package server

// indexHTML is the transcript upload form served at /.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
  <title>Meeting Minutes to Jira</title>
  <style>
    body { font-family: Arial, sans-serif; padding: 20px; background: #f5f5f5; }
    .container { max-width: 700px; margin: auto; background: #fff; padding: 25px;
                 box-shadow: 0 0 10px rgba(0,0,0,0.1); border-radius: 10px; }
    h2 { text-align: center; }
    input, button { width: 100%; margin: 10px 0; padding: 10px; font-size: 1rem; }
    label { margin-top: 10px; display: block; font-weight: bold; }
    .success { color: green; }
    .error { color: red; }
    pre { background-color: #eee; padding: 10px; border-radius: 8px; overflow-x: auto; }
  </style>
</head>
<body>
  <div class="container">
    <h2>Upload Meeting Transcript to Create Jira Issues</h2>
    <form id="momForm">
      <label>Email</label>
      <input type="email" name="jira_email" required />

      <label>Jira API Token</label>
      <input type="password" name="jira_api_token" required />

      <label>Jira Instance URL</label>
      <input type="text" name="jira_api_instance" placeholder="https://your-domain.atlassian.net" required />

      <label>Jira Project Name</label>
      <input type="text" name="project_name" required />

      <label>Meeting Transcript (.txt)</label>
      <input type="file" name="meeting_file" accept=".txt" required />

      <button type="submit">Submit</button>
    </form>

    <div id="output"></div>
  </div>

  <script>
    document.getElementById('momForm').addEventListener('submit', async function(event) {
      event.preventDefault();
      const formData = new FormData(event.target);
      const output = document.getElementById('output');
      output.innerHTML = '<p>Submitting...</p>';
      try {
        const response = await fetch('/process', { method: 'POST', body: formData });
        const result = await response.json();
        if (response.ok) {
          output.innerHTML = ` + "`" + `
            <p class="success">Jira issues processed.</p>
            <h3>Generated MoM:</h3>
            <pre>${result.mom}</pre>
            <h3>Assignees &amp; Account IDs:</h3>
            <pre>${JSON.stringify(result.account_ids, null, 2)}</pre>
            <h3>Issue Outcomes:</h3>
            <pre>${JSON.stringify(result.created_issues, null, 2)}</pre>
          ` + "`" + `;
        } else {
          output.innerHTML = ` + "`" + `<p class="error">Error: ${result.error}</p>` + "`" + `;
        }
      } catch (err) {
        output.innerHTML = ` + "`" + `<p class="error">Request failed: ${err}</p>` + "`" + `;
      }
    });
  </script>
</body>
</html>
`
